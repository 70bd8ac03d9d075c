package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/infrakeeper/internal/client/manager"
	"github.com/dmitrijs2005/infrakeeper/internal/wire"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// firstLine keeps tables one row per record.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func renderSummary(w io.Writer, s *wire.Summary) {
	tw := newTable(w)
	fmt.Fprintf(tw, "VMware servers\t%d\n", s.Servers)
	fmt.Fprintf(tw, "Virtual appliances\t%d\n", s.Appliances)
	fmt.Fprintf(tw, "Applications\t%d\n", s.Applications)
	fmt.Fprintf(tw, "Containers\t%d\n", s.Containers)
	fmt.Fprintf(tw, "URLs\t%d\n", s.URLs)
	fmt.Fprintf(tw, "CPU cores\t%d\n", s.TotalCPUCores)
	fmt.Fprintf(tw, "RAM (GB)\t%d\n", s.TotalRAMGB)
	fmt.Fprintf(tw, "Storage (TB)\t%.1f\n", s.TotalStorageTB)
	fmt.Fprintf(tw, "Credentials\t%d\n", s.Credentials)
	fmt.Fprintf(tw, "Critical notes\t%d\n", s.CriticalNotes)
	fmt.Fprintf(tw, "Warning notes\t%d\n", s.WarningNotes)
	tw.Flush()
}

func renderEntities(w io.Writer, rows []wire.EntityRow, query string) {
	if len(rows) == 0 {
		if query != "" {
			fmt.Fprintf(w, "No entities match %q.\n", query)
		} else {
			fmt.Fprintln(w, "No entities.")
		}
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "KIND\tID\tNAME\tADDRESS\tDETAIL\tCREDS\tNOTES")
	for _, r := range rows {
		addr := r.IPAddress
		if addr == "" {
			addr = r.Hostname
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%d\t%d\n",
			r.Association.Kind, r.Association.ID, orDash(r.Title), orDash(addr), orDash(r.Detail),
			r.CredentialCount, r.NoteCount)
	}
	tw.Flush()
}

func renderCredentials(w io.Writer, m *manager.CredentialManager) {
	recs := m.Records()
	if len(recs) == 0 {
		fmt.Fprintln(w, `No credentials. Type "add" to create one.`)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUSERNAME\tPASSWORD\tPORT\tURL\tNOTE\tUPDATED")
	for _, c := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\n",
			c.ID, orDash(c.Username), orDash(m.DisplayPassword(c)), c.Port, orDash(c.URL),
			orDash(firstLine(c.Note)), c.LastUpdated.Local().Format(timeLayout))
	}
	tw.Flush()
}

func renderNotes(w io.Writer, m *manager.NotesManager) {
	if m.Empty() {
		fmt.Fprintln(w, manager.EmptyNotesMessage)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSEVERITY\tCREATED\tNOTE")
	for _, n := range m.Records() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			n.ID, manager.SeverityStyle(n.Severity).Badge(), n.CreatedAt.Local().Format(timeLayout), firstLine(n.Note))
	}
	tw.Flush()
}
