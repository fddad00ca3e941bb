package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/weighttrack/internal/common"
	"github.com/dmitrijs2005/weighttrack/internal/models"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return errNotLoggedIn
	}
	return nil
}

// getOwnEntry loads an entry and verifies it belongs to the session user.
// Entries of other users are reported as missing, not as forbidden.
func (a *App) getOwnEntry(ctx context.Context, id int64) (*models.WeightEntry, error) {
	entry, err := a.weight.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != a.userID {
		return nil, common.ErrorNotFound
	}
	return entry, nil
}

// AddWeight prompts for a value, date and optional note and stores a new
// entry for the session user.
func (a *App) AddWeight(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	value, err := GetWeightValue(a.reader, os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	date, err := GetDate(a.reader, os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	note, err := getSimpleText(a.reader, "Enter note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.weight.Add(ctx, a.userID, value, date, note)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Println("Invalid entry:", err)
		} else {
			fmt.Println("Failed to add entry:", err)
		}
		return err
	}

	fmt.Printf("Added entry %d.\n", id)
	return nil
}

// ListWeights renders all entries of the session user, newest first.
func (a *App) ListWeights(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	entries, err := a.weight.List(ctx, a.userID)
	if err != nil {
		fmt.Println("Failed to list entries:", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	renderWeights(os.Stdout, entries)
	return nil
}

// ShowWeight displays a single entry by id.
func (a *App) ShowWeight(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetID(a.reader, "Enter entry id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}

	entry, err := a.getOwnEntry(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("No such entry.")
		} else {
			fmt.Println("Failed to load entry:", err)
		}
		return err
	}

	renderWeights(os.Stdout, []models.WeightEntry{*entry})
	return nil
}

// UpdateWeight rewrites an existing entry of the session user.
func (a *App) UpdateWeight(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetID(a.reader, "Enter entry id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if _, err := a.getOwnEntry(ctx, id); err != nil {
		fmt.Println("No such entry.")
		return err
	}

	value, err := GetWeightValue(a.reader, os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	date, err := GetDate(a.reader, os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	note, err := getSimpleText(a.reader, "Enter note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	n, err := a.weight.Update(ctx, id, value, date, note)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Println("Invalid entry:", err)
		} else {
			fmt.Println("Failed to update entry:", err)
		}
		return err
	}
	if n == 0 {
		fmt.Println("No such entry.")
		return common.ErrorNotFound
	}

	fmt.Println("Entry updated.")
	return nil
}

// DeleteWeight removes an entry of the session user.
func (a *App) DeleteWeight(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	id, err := GetID(a.reader, "Enter entry id", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	if _, err := a.getOwnEntry(ctx, id); err != nil {
		fmt.Println("No such entry.")
		return err
	}

	if _, err := a.weight.Delete(ctx, id); err != nil {
		fmt.Println("Failed to delete entry:", err)
		return err
	}

	fmt.Println("Entry deleted.")
	return nil
}
