package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/five82/morty/internal/catalog"
	"github.com/five82/morty/internal/locale"
	"github.com/five82/morty/internal/route"
	"github.com/five82/morty/internal/state"
	"github.com/five82/morty/internal/ui"
)

// ErrFetchFailed is returned when plain output ends in the Failed state.
var ErrFetchFailed = errors.New("fetch failed")

// printer renders screens as plain text. It drives the same controllers as
// the TUI, blocking on each fetch.
type printer struct {
	w      io.Writer
	svc    catalog.Service
	loc    *locale.Localizer
	logger log.FieldLogger
}

func (p printer) list(ctx context.Context) error {
	ctrl := state.NewController[int, catalog.ItemPage](p.svc.ListItems,
		state.WithName("list"),
		state.WithDescriber(ui.NewDescriber(p.loc)),
		state.WithLogger(p.logger))
	defer ctrl.Deactivate()

	st := ctrl.Run(ctx, catalog.FirstPage)
	if reason, failed := st.Reason(); failed {
		return fmt.Errorf("%w: %s", ErrFetchFailed, reason)
	}
	page, _ := st.Value()

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		p.loc.T(locale.MsgFieldID, nil),
		p.loc.T(locale.MsgFieldName, nil),
		p.loc.T(locale.MsgFieldStatus, nil),
		p.loc.T(locale.MsgFieldSpecies, nil),
		p.loc.T(locale.MsgFieldGender, nil))
	for _, item := range page.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, p.loc.Status(item.Status), item.Species, p.loc.Gender(item.Gender))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	fmt.Fprintln(p.w, p.loc.T(locale.MsgPageSummary, map[string]any{
		"Page":  page.Page,
		"Pages": page.TotalPages,
		"Count": page.TotalCount,
	}))
	return nil
}

// item prints one character. raw is decoded exactly like a detail route
// segment; a malformed value fails without a request.
func (p printer) item(ctx context.Context, raw string) error {
	ctrl := state.NewController[int, catalog.Item](p.svc.GetItemByID,
		state.WithName("detail"),
		state.WithDescriber(ui.NewDescriber(p.loc)),
		state.WithLogger(p.logger))
	defer ctrl.Deactivate()

	var st state.State[catalog.Item]
	if id, err := route.ParseItemID(raw); err != nil {
		ctrl.Fail(err)
		st = ctrl.State()
	} else {
		st = ctrl.Run(ctx, id)
	}

	if reason, failed := st.Reason(); failed {
		return fmt.Errorf("%w: %s", ErrFetchFailed, reason)
	}
	item, _ := st.Value()

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{p.loc.T(locale.MsgFieldID, nil), strconv.Itoa(item.ID)},
		{p.loc.T(locale.MsgFieldName, nil), item.Name},
		{p.loc.T(locale.MsgFieldStatus, nil), p.loc.Status(item.Status)},
		{p.loc.T(locale.MsgFieldSpecies, nil), item.Species},
		{p.loc.T(locale.MsgFieldType, nil), item.Type},
		{p.loc.T(locale.MsgFieldGender, nil), p.loc.Gender(item.Gender)},
		{p.loc.T(locale.MsgFieldImage, nil), item.Image},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write item: %w", err)
	}
	return nil
}
