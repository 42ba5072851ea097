package addon

import (
	"fmt"
	"strings"
)

// ErrAddonMissing is returned when the app has no add-on of the requested kind
type ErrAddonMissing struct {
	Kind Kind
	App  string
}

func (err ErrAddonMissing) Error() string {
	return fmt.Sprintf(
		"%s add-on isn't present on %s.\nInstall the add-on using heroku addons:create %s -a %s.",
		err.Kind.Label,
		err.App,
		err.Kind.Service,
		err.App,
	)
}

// DisableUsage disables usage printing
func (err ErrAddonMissing) DisableUsage() struct{} { return struct{}{} }

// ReferenceLinks returns the add-on documentation
func (err ErrAddonMissing) ReferenceLinks() []string { return docsLinks(err.Kind) }

// ErrAddonNotProvisioned is returned when the add-on is not ready to use yet
type ErrAddonNotProvisioned struct {
	Kind  Kind
	App   string
	Name  string
	State string
}

func (err ErrAddonNotProvisioned) Error() string {
	return fmt.Sprintf(
		"%s add-on %s on %s isn't provisioned yet (state: %s).\nWait for the add-on to finish provisioning and try again.",
		err.Kind.Label,
		err.Name,
		err.App,
		err.State,
	)
}

// DisableUsage disables usage printing
func (err ErrAddonNotProvisioned) DisableUsage() struct{} { return struct{}{} }

// ErrAddonAmbiguous is returned when several add-ons of the requested kind are attached to the app
type ErrAddonAmbiguous struct {
	Kind  Kind
	App   string
	Names []string
}

func (err ErrAddonAmbiguous) Error() string {
	return fmt.Sprintf(
		"Multiple %s add-ons are present on %s: %s.\nSpecify the add-on to use with --addon.",
		err.Kind.Label,
		err.App,
		strings.Join(err.Names, ", "),
	)
}

// DisableUsage disables usage printing
func (err ErrAddonAmbiguous) DisableUsage() struct{} { return struct{}{} }

// ErrAddonMisconfigured is returned when the add-on does not expose its api url
type ErrAddonMisconfigured struct {
	Kind   Kind
	Name   string
	Reason string
}

func (err ErrAddonMisconfigured) Error() string {
	return fmt.Sprintf("%s add-on %s is misconfigured: %s.", err.Kind.Label, err.Name, err.Reason)
}

// DisableUsage disables usage printing
func (err ErrAddonMisconfigured) DisableUsage() struct{} { return struct{}{} }

// ReferenceLinks returns the add-on documentation
func (err ErrAddonMisconfigured) ReferenceLinks() []string { return docsLinks(err.Kind) }

func docsLinks(kind Kind) []string {
	if kind.DocsURL == "" {
		return nil
	}
	return []string{kind.DocsURL}
}
