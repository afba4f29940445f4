package ui

import (
	"errors"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/rickmorty"
	"github.com/five82/morty/internal/route"
	"github.com/five82/morty/internal/state"
)

// NewDescriber returns the describer both screens use to turn a fetch
// error into the localized text shown in place of content.
func NewDescriber(loc *locale.Localizer) state.Describer {
	return func(err error) string {
		return loc.LoadError(failureDetails(loc, err))
	}
}

func failureDetails(loc *locale.Localizer, err error) string {
	if errors.Is(err, route.ErrInvalidItemID) || errors.Is(err, catalog.ErrInvalidID) {
		return loc.T(locale.MsgFailureInvalidID, nil)
	}
	f := rickmorty.Classify(err)
	switch f.Kind {
	case rickmorty.FailureStatus:
		return loc.T(locale.MsgFailureStatus, map[string]any{"Status": f.Status})
	case rickmorty.FailureTimeout:
		return loc.T(locale.MsgFailureTimeout, nil)
	case rickmorty.FailureCancelled:
		return loc.T(locale.MsgFailureCancelled, nil)
	case rickmorty.FailureNetwork:
		return loc.T(locale.MsgFailureNetwork, nil)
	case rickmorty.FailureDecode:
		return loc.T(locale.MsgFailureDecode, nil)
	}
	return loc.T(locale.MsgFailureOther, nil)
}
