package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeList   Type = "list"
	TypeCheck  Type = "check"
	TypeDelete Type = "delete"
	TypeUse    Type = "use"
	TypeExport Type = "export"
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

type ListArgs struct {
	Name string
}

// CheckArgs targets an item by its 1-based position in the active list.
type CheckArgs struct {
	Index int
}

type DeleteArgs struct {
	// List deletes the active list itself instead of one of its items.
	List  bool
	Index int
}

type UseArgs struct {
	Name string
}

type ExportArgs struct {
	Path string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	List   *ListArgs
	Check  *CheckArgs
	Delete *DeleteArgs
	Use    *UseArgs
	Export *ExportArgs
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
	case TypeList:
		return parseList(input, args)
	case TypeCheck:
		return parseCheck(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypeUse:
		return parseUse(input, args)
	case TypeExport:
		return parseExport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires item text"}
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires item text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseList(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "list requires a name"}
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "list requires a name"}
	}
	return Command{Type: TypeList, Raw: raw, List: &ListArgs{Name: name}}, nil
}

func parseCheck(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "check requires an item number"}
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid item number: %s", args[0])}
	}
	return Command{Type: TypeCheck, Raw: raw, Check: &CheckArgs{Index: idx}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires an item number or \"list\""}
	}
	if strings.EqualFold(args[0], "list") {
		return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{List: true}}, nil
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid item number: %s", args[0])}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Index: idx}}, nil
}

func parseUse(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "use requires a list name"}
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "use requires a list name"}
	}
	return Command{Type: TypeUse, Raw: raw, Use: &UseArgs{Name: name}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	path := strings.TrimSpace(strings.Join(args, " "))
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Path: path}}, nil
}
