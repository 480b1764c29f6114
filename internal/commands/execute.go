package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	User   func(UserArgs) (Result, error)
	Switch func(SwitchArgs) (Result, error)
	Goto   func(GotoArgs) (Result, error)
	Today  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeUser:
		if handlers.User == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "user handler not configured"}
		}
		return handlers.User(*cmd.User)
	case TypeSwitch:
		if handlers.Switch == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "switch handler not configured"}
		}
		return handlers.Switch(*cmd.Switch)
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "goto handler not configured"}
		}
		return handlers.Goto(*cmd.Goto)
	case TypeToday:
		if handlers.Today == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "today handler not configured"}
		}
		return handlers.Today()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
