package main

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var helpTemplates = sync.OnceValue(func() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"flags":   flagList,
		"version": func() string { return version },
	}).ParseFS(helpFS, "templates/*.txt"))
})

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

func flagList(fs *flag.FlagSet) []flagInfo {
	var out []flagInfo
	if fs != nil {
		fs.VisitAll(func(f *flag.Flag) {
			out = append(out, flagInfo{Name: f.Name, DefValue: f.DefValue, Usage: f.Usage})
		})
	}
	return out
}

// HelpData is implemented by every command that can print its own help.
type HelpData interface {
	Program() string
	FlagSet() *flag.FlagSet
}

// helpTopic picks the template file for a command.
func helpTopic(h HelpData) string {
	switch h.(type) {
	case *windowCmd:
		return "window.txt"
	case *termCmd:
		return "term.txt"
	case *scriptCmd:
		return "script.txt"
	case *configCmd:
		return "config.txt"
	case *versionCmd:
		return "version.txt"
	default:
		return "root.txt"
	}
}

func writeHelp(w io.Writer, h HelpData) error {
	return helpTemplates().ExecuteTemplate(w, helpTopic(h), h)
}

// UsageError carries the help of the command that was misused.
type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	var sb strings.Builder
	if err := writeHelp(&sb, e.of); err != nil {
		log.Printf("help %s: %v", helpTopic(e.of), err)
		return err.Error()
	}
	return sb.String()
}

// usageFunc is installed as FlagSet.Usage.
func usageFunc(h HelpData) func() {
	return func() {
		if err := writeHelp(os.Stderr, h); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
