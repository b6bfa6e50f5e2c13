// Package output renders task lists for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskapp/internal/service"
	"taskapp/internal/task"
)

// ListSeparator frames list section headers.
const ListSeparator = "------------"

// FormatTask writes one numbered task line: "{N:>4}  {TITLE}".
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(t.Title))
}

// FormatTaskIndented writes a task line inside a list section, indented by four spaces.
func FormatTaskIndented(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "    %4d  %s\n", num, normalizeTitle(t.Title))
}

// FormatSection writes a list header followed by its indented tasks.
func FormatSection(w io.Writer, title string, isDefault bool, tasks []task.Task) {
	FormatListHeader(w, title, isDefault)
	for i, t := range tasks {
		FormatTaskIndented(w, i+1, t)
	}
}

// FormatListHeader writes a list section header.
func FormatListHeader(w io.Writer, title string, isDefault bool) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, listTitle(title, isDefault))
	fmt.Fprintln(w, ListSeparator)
}

// FormatListName writes a list name for the lists command.
func FormatListName(w io.Writer, list service.TaskList) {
	fmt.Fprintln(w, listTitle(list.Title, list.IsDefault))
}

func listTitle(title string, isDefault bool) string {
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	if isDefault {
		title += " [default]"
	}
	return title
}

// normalizeTitle puts a title on one line; blank titles become "(untitled)".
func normalizeTitle(title string) string {
	title = strings.NewReplacer("\r", " ", "\n", " ").Replace(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
