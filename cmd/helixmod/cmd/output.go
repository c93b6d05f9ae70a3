package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/streamforge/helixmod/pkg/helix/moderation"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printModeratorsTable(mods []moderation.Moderator) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("USER ID\tUSER NAME\n")
	for i := range mods {
		tw.writef("%s\t%s\n", mods[i].UserID, mods[i].UserName)
	}
	return tw.finish()
}

func printBannedUsersTable(users []moderation.BannedUser) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("USER ID\tUSER NAME\tEXPIRES\n")
	for i := range users {
		expires := "permanent"
		if t, ok := users[i].Expiry(); ok {
			expires = t.Format(time.RFC3339)
		}
		tw.writef("%s\t%s\t%s\n", users[i].UserID, users[i].UserName, expires)
	}
	return tw.finish()
}

func printModeratorEventsTable(events []moderation.ModeratorEvent) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TIMESTAMP\tEVENT\tUSER\tID\n")
	for i := range events {
		e := &events[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			e.EventTimestamp.Format("2006-01-02 15:04:05"),
			e.EventType,
			e.EventData["user_name"],
			truncate(e.ID, 20),
		)
	}
	return tw.finish()
}

func printBannedEventsTable(events []moderation.BannedEvent) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TIMESTAMP\tEVENT\tUSER\tEXPIRES\n")
	for i := range events {
		e := &events[i]
		expires := e.EventData["expires_at"]
		if expires == "" {
			expires = "permanent"
		}
		tw.writef("%s\t%s\t%s\t%s\n",
			e.EventTimestamp.Format("2006-01-02 15:04:05"),
			e.EventType,
			e.EventData["user_name"],
			expires,
		)
	}
	return tw.finish()
}

func printAutoModStatusTable(statuses []moderation.AutoModStatus) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("MSG ID\tPERMITTED\n")
	for i := range statuses {
		tw.writef("%s\t%v\n", statuses[i].MsgID, statuses[i].IsPermitted)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
