package chatcmd

import (
	"regexp"
	"strings"
)

type Command string

const (
	CommandAccept  Command = "accept"
	CommandDecline Command = "decline"
	CommandReady   Command = "ready"
	CommandOut     Command = "out"
	CommandUnknown Command = "unknown"
)

// Action is the parsed form of a seller's free-text chat reply. OrderNumber
// is empty when the message names no explicit target; resolution then falls
// back to the sender's most recent order in the command's expected state.
type Action struct {
	Command     Command
	OrderNumber string
}

var orderNumberRe = regexp.MustCompile(`(?i)\bord-(\d+)\b`)

// Interpret parses one inbound message. This is a flat command machine: no
// conversation state is kept between messages.
func Interpret(rawText string) Action {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(rawText)))
	if len(tokens) == 0 {
		return Action{Command: CommandUnknown}
	}

	act := Action{Command: CommandUnknown}
	switch tokens[0] {
	case "accept":
		act.Command = CommandAccept
	case "decline":
		act.Command = CommandDecline
	case "ready":
		act.Command = CommandReady
	case "out":
		act.Command = CommandOut
	}

	for _, tok := range tokens {
		if m := orderNumberRe.FindString(tok); m != "" {
			act.OrderNumber = strings.ToUpper(m)
			break
		}
	}

	return act
}

// HelpText is the fixed reply for unknown commands and unresolved senders.
const HelpText = "Hi! Reply with one of:\n" +
	"accept [ORD-0000] - confirm a new order\n" +
	"decline [ORD-0000] - decline a new order\n" +
	"ready [ORD-0000] - mark an order ready\n" +
	"out [ORD-0000] - notify the buyer it is out for delivery"
