package platform

import (
	"fmt"
	"strings"
)

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// toastScript builds the PowerShell that shows a Windows toast. The image
// template is used only when icon is set.
func toastScript(title, body, icon string) string {
	icon = strings.TrimSpace(icon)
	tmpl := "ToastText02"
	if icon != "" {
		tmpl = "ToastImageAndText02"
	}
	var sb strings.Builder
	sb.WriteString(`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null; `)
	fmt.Fprintf(&sb, `$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::%s); `, tmpl)
	sb.WriteString(`$texts = $template.GetElementsByTagName("text"); `)
	fmt.Fprintf(&sb, `$texts.Item(0).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(title))
	fmt.Fprintf(&sb, `$texts.Item(1).AppendChild($template.CreateTextNode(%s)) > $null; `, psQuote(body))
	if icon != "" {
		fmt.Fprintf(&sb, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", %s); `, psQuote(icon))
	}
	sb.WriteString(`$toast = [Windows.UI.Notifications.ToastNotification]::new($template); `)
	fmt.Fprintf(&sb, `[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);`, psQuote(AppName))
	return sb.String()
}
