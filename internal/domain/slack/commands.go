package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdList     CommandType = "list"
	CmdChore    CommandType = "chore"
	CmdSchedule CommandType = "schedule"
	CmdConfig   CommandType = "config"
	CmdPause    CommandType = "pause"
	CmdResume   CommandType = "resume"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "remove", "rm":
		cmd.Type = CmdRemove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "chore", "chores":
		cmd.Type = CmdChore
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "schedule", "board":
		cmd.Type = CmdSchedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "config":
		cmd.Type = CmdConfig
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "status":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// SplitQuotedName takes the args of a chore subcommand and returns the chore
// name (the leading quoted string, or the first token when unquoted) plus
// the remaining args. Both single and double quotes are accepted.
func SplitQuotedName(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	first := args[0]
	var quote byte
	if strings.HasPrefix(first, `"`) {
		quote = '"'
	} else if strings.HasPrefix(first, `'`) {
		quote = '\''
	}
	if quote == 0 {
		return first, args[1:]
	}

	for i, arg := range args {
		if strings.HasSuffix(arg, string(quote)) && (i > 0 || len(arg) > 1) {
			name := strings.Join(args[:i+1], " ")
			name = strings.Trim(name, string(quote))
			return strings.TrimSpace(name), args[i+1:]
		}
	}

	// Unterminated quote: treat the whole remainder as the name.
	name := strings.TrimPrefix(strings.Join(args, " "), string(quote))
	return strings.TrimSpace(name), nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Manage Members:*
• ` + "`/chores add @user`" + ` - Add member to the rotation
• ` + "`/chores remove @user`" + ` - Remove member from the rotation
• ` + "`/chores list`" + ` - List all members

*Manage Chores:*
• ` + "`/chores chore add NAME CADENCE WEIGHT [AREA]`" + ` - Add a chore (ex: ` + "`chore add \"Clean kitchen\" weekly 3 Kitchen`" + `)
• ` + "`/chores chore set ID NAME CADENCE WEIGHT [AREA]`" + ` - Update a chore
• ` + "`/chores chore rm ID`" + ` - Remove a chore
• ` + "`/chores chore ls`" + ` - List the chore catalog
  Cadences: weekly, twice-weekly, biweekly, monthly, quarterly. Weight: 1-5.

*Schedule:*
• ` + "`/chores schedule`" + ` - Show the chore board for the current cycle

*Configuration:*
• ` + "`/chores config time HH:MM`" + ` - Set notification time (ex: 09:30)
• ` + "`/chores config day N`" + ` - Set notification day (1=Mon ... 7=Sun)
• ` + "`/chores config weeks N`" + ` - Set cycle length in weeks (1-12)
• ` + "`/chores config min N`" + ` / ` + "`max N`" + ` - Set weekly chore count bounds
• ` + "`/chores config repeat on|off`" + ` - Avoid giving a chore to the same person two weeks in a row
• ` + "`/chores config duplicate on|off`" + ` - Forbid the same chore twice for one person in a week
• ` + "`/chores config quarterly cycle|12w`" + ` - Quarterly chores once per cycle or every 12 weeks
• ` + "`/chores config show`" + ` - Show current settings

*Control:*
• ` + "`/chores pause`" + ` - Pause weekly notifications
• ` + "`/chores resume`" + ` - Resume weekly notifications
• ` + "`/chores status`" + ` - Show bot status for this channel`
}
