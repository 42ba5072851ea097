package cli

// DisableUsage is implemented by errors that are fully explained by their message,
// so the command usage is not printed alongside them
type DisableUsage interface {
	DisableUsage() struct{}
}

// CommandSuggester is implemented by errors that know which commands may help the user recover
type CommandSuggester interface {
	SuggestedCommands() []string
}

// LinkReferrer is implemented by errors that point at documentation for more context
type LinkReferrer interface {
	ReferenceLinks() []string
}

// usageless wraps setup and flag errors raised before a handler runs
type usageless struct {
	cause error
}

func (err usageless) Error() string { return err.cause.Error() }

func (err usageless) Unwrap() error { return err.cause }

func (err usageless) DisableUsage() struct{} { return struct{}{} }
