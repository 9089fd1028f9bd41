package testutil

import "github.com/hbjs97/cswap/internal/prompt"

// FakeForms returns pre-configured answers instead of running interactive forms.
type FakeForms struct {
	// Selected is returned by RunProfileSelect.
	Selected string
	// Identifier is returned by RunIdentifierInput.
	Identifier string
	// Confirm is returned by RunConfirm.
	Confirm bool
	// Err, if set, is returned by every form.
	Err error

	// Choices records the choices passed to the last RunProfileSelect call.
	Choices []prompt.Choice
	// Calls records the form names that were run, in order.
	Calls []string
}

var _ prompt.FormRunner = (*FakeForms)(nil)

// RunProfileSelect implements prompt.FormRunner.
func (f *FakeForms) RunProfileSelect(choices []prompt.Choice) (string, error) {
	f.Calls = append(f.Calls, "select")
	f.Choices = choices
	return f.Selected, f.Err
}

// RunIdentifierInput implements prompt.FormRunner.
func (f *FakeForms) RunIdentifierInput(_ []string) (string, error) {
	f.Calls = append(f.Calls, "input")
	return f.Identifier, f.Err
}

// RunConfirm implements prompt.FormRunner.
func (f *FakeForms) RunConfirm(_ string) (bool, error) {
	f.Calls = append(f.Calls, "confirm")
	return f.Confirm, f.Err
}
