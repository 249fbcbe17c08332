package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/wheel/internal/client/client"
	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
)

// report prints err in user terms and returns it unchanged.
func report(err error) error {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable, try again later")
	case errors.Is(err, common.ErrorInvalidArgument), errors.Is(err, common.ErrorNotFound):
		printlnFn(err.Error())
	case errors.Is(err, common.ErrorAlreadyDecided):
		printlnFn("You already decided on this vehicle")
	default:
		printlnFn("Error:", err.Error())
	}
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad vehicle id %q", common.ErrorInvalidArgument, s)
	}
	return id, nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad amount %q", common.ErrorInvalidArgument, s)
	}
	return v, nil
}

// argOrPrompt returns args[0], or asks the user when no argument was given.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, prompt, os.Stdout)
}

func (a *App) Budget(ctx context.Context, args []string) error {

	if len(args) == 0 {
		st, err := a.client.State(ctx)
		if err != nil {
			return report(err)
		}
		printlnFn(fmt.Sprintf("Budget: %s (%d of %d vehicles in deck)", formatMonthly(st.Budget), st.DeckSize, st.TotalCars))
		return nil
	}

	amount, err := parseAmount(args[0])
	if err != nil {
		return report(err)
	}

	resp, err := a.client.SetBudget(ctx, amount)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("Budget set to %s, %d vehicles in deck", formatMonthly(resp.Budget), resp.DeckSize))
	return nil
}

func (a *App) MustHaves(ctx context.Context) error {

	st, err := a.client.State(ctx)
	if err != nil {
		return report(err)
	}

	for _, f := range garage.AllMustHaves {
		mark := " "
		if st.MustHaves[f.Key()] {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s (%s)", mark, f.Label(), f.Key()))
	}
	return nil
}

func (a *App) Toggle(ctx context.Context, args []string) error {

	feature, err := a.argOrPrompt(args, "Feature (heatedSeats, pushToStart, appleCarPlay, awd)")
	if err != nil {
		return report(err)
	}

	resp, err := a.client.ToggleMustHave(ctx, feature)
	if err != nil {
		return report(err)
	}

	state := "off"
	if resp.Enabled {
		state = "on"
	}
	printlnFn(fmt.Sprintf("%s is %s, %d vehicles in deck", resp.Feature, state, resp.DeckSize))
	return nil
}

func (a *App) Swipe(ctx context.Context) error {

	deck, err := a.client.SwipeDeck(ctx)
	if err != nil {
		return report(err)
	}

	if len(deck) == 0 {
		printlnFn("No more cars match your budget and must-haves")
		return nil
	}

	printlnFn(formatCard(deck[0], ruleWidth()))
	printlnFn(fmt.Sprintf("%d in deck: like or nope", len(deck)))
	return nil
}

// target resolves the vehicle a decision applies to: the given id, or the
// top of the deck.
func (a *App) target(ctx context.Context, args []string) (int64, bool, error) {
	if len(args) > 0 {
		id, err := parseID(args[0])
		return id, err == nil, err
	}

	deck, err := a.client.SwipeDeck(ctx)
	if err != nil {
		return 0, false, err
	}
	if len(deck) == 0 {
		return 0, false, nil
	}
	return deck[0].ID, true, nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	return a.decide(ctx, args, true)
}

func (a *App) Nope(ctx context.Context, args []string) error {
	return a.decide(ctx, args, false)
}

func (a *App) decide(ctx context.Context, args []string, like bool) error {

	id, ok, err := a.target(ctx, args)
	if err != nil {
		return report(err)
	}
	if !ok {
		printlnFn("Nothing to decide on: the deck is empty")
		return nil
	}

	call, verb := a.client.Nope, "Passed on"
	if like {
		call, verb = a.client.Like, "Liked"
	}

	resp, err := call(ctx, id)
	if err != nil {
		return report(err)
	}

	printlnFn(fmt.Sprintf("%s %s, %d left in deck", verb, title(resp.Car), resp.DeckSize))
	return nil
}

func (a *App) Garage(ctx context.Context) error {

	cars, err := a.client.Garage(ctx)
	if err != nil {
		return report(err)
	}

	if len(cars) == 0 {
		printlnFn("Your garage is empty, go swipe")
		return nil
	}

	for _, c := range cars {
		printlnFn(formatRow(c))
	}
	return nil
}

func (a *App) Cars(ctx context.Context) error {

	cars, err := a.client.Cars(ctx)
	if err != nil {
		return report(err)
	}

	for _, c := range cars {
		printlnFn(formatRow(c))
	}
	return nil
}

func (a *App) Details(ctx context.Context, args []string) error {

	raw, err := a.argOrPrompt(args, "Vehicle id")
	if err != nil {
		return report(err)
	}

	id, err := parseID(raw)
	if err != nil {
		return report(err)
	}

	car, err := a.client.Car(ctx, id)
	if err != nil {
		return report(err)
	}

	printlnFn(formatCard(*car, ruleWidth()))
	return nil
}
