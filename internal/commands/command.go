// Package commands parses the slash commands typed into the command palette.
package commands

import (
	"fmt"
	"strings"

	"github.com/starboardhq/starboard/internal/dateutil"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeUser   Type = "user"
	TypeSwitch Type = "switch"
	TypeGoto   Type = "goto"
	TypeToday  Type = "today"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type UserArgs struct {
	Name string
}

type SwitchArgs struct {
	Name string
}

type GotoArgs struct {
	Date string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	User   *UserArgs
	Switch *SwitchArgs
	Goto   *GotoArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeUser:
		return parseUser(input, args)
	case TypeSwitch:
		return parseSwitch(input, args)
	case TypeGoto:
		return parseGoto(input, args)
	case TypeToday:
		return Command{Type: TypeToday, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseUser(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "user requires a name"}
	}
	return Command{Type: TypeUser, Raw: raw, User: &UserArgs{Name: name}}, nil
}

func parseSwitch(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "switch requires a user name"}
	}
	return Command{Type: TypeSwitch, Raw: raw, Switch: &SwitchArgs{Name: name}}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a YYYY-MM-DD date"}
	}
	if _, err := dateutil.ParseDay(args[0]); err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("goto: invalid date %q", args[0])}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: args[0]}}, nil
}
