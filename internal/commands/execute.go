package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	List   func(ListArgs) (Result, error)
	Check  func(CheckArgs) (Result, error)
	Delete func(DeleteArgs) (Result, error)
	Use    func(UseArgs) (Result, error)
	Export func(ExportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeList:
		if handlers.List == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "list handler not configured"}
		}
		return handlers.List(*cmd.List)
	case TypeCheck:
		if handlers.Check == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "check handler not configured"}
		}
		return handlers.Check(*cmd.Check)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeUse:
		if handlers.Use == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "use handler not configured"}
		}
		return handlers.Use(*cmd.Use)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "export handler not configured"}
		}
		return handlers.Export(*cmd.Export)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
