package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/renwick/curio/internal/catalog"
	"github.com/renwick/curio/internal/item"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long: `Run the interactive catalog menu.

All changes stay in memory until "Save and exit" is chosen; interrupting
the program discards them and leaves the catalog file untouched.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	path := catalogPath()
	items := mustLoadItems(path)

	// The catalog file is only written on explicit save, so an interrupt
	// can never corrupt it. Warn that in-memory changes are gone.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\ninterrupted: unsaved changes discarded")
		os.Exit(ExitError)
	}()

	items, saved, err := menuLoop(os.Stdin, os.Stdout, items)
	if err != nil {
		fmt.Fprintln(os.Stderr, "input closed: unsaved changes discarded")
		os.Exit(ExitError)
	}
	if !saved {
		return nil
	}

	mustSaveItems(path, items)
	refreshIndex(path, items)
	fmt.Println("Saved. Goodbye!")
	return nil
}

// menuLoop runs the numbered prompt loop over the given streams until
// the user picks "Save and exit". It mutates only the in-memory
// collection; persistence is the caller's job. Returns the final
// collection and whether a save was requested. A read failure (EOF)
// aborts the loop with an error.
func menuLoop(in io.Reader, out io.Writer, items []item.Item) ([]item.Item, bool, error) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "1. View items")
		fmt.Fprintln(out, "2. Add item")
		fmt.Fprintln(out, "3. Edit item")
		fmt.Fprintln(out, "4. Save and exit")
		fmt.Fprint(out, "Choose (1-4): ")

		choice, err := readLine(reader)
		if err != nil {
			return items, false, err
		}

		switch choice {
		case "1":
			fmt.Fprintln(out)
			printItemsHuman(out, items)

		case "2":
			items, err = menuAdd(reader, out, items)
			if err != nil {
				return items, false, err
			}

		case "3":
			items, err = menuEdit(reader, out, items)
			if err != nil {
				return items, false, err
			}

		case "4":
			return items, true, nil

		default:
			fmt.Fprintln(out, "Invalid choice.")
		}
	}
}

func menuAdd(reader *bufio.Reader, out io.Writer, items []item.Item) ([]item.Item, error) {
	fmt.Fprint(out, "Enter name: ")
	name, err := readLine(reader)
	if err != nil {
		return items, err
	}
	fmt.Fprint(out, "Enter description: ")
	description, err := readLine(reader)
	if err != nil {
		return items, err
	}

	items, _, addErr := catalog.Add(items, name, description)
	if addErr != nil {
		fmt.Fprintln(out, "Name and description cannot be empty.")
		return items, nil
	}
	fmt.Fprintln(out, "Item added!")
	return items, nil
}

func menuEdit(reader *bufio.Reader, out io.Writer, items []item.Item) ([]item.Item, error) {
	fmt.Fprintln(out)
	printItemsHuman(out, items)

	fmt.Fprint(out, "Enter ID to edit: ")
	idLine, err := readLine(reader)
	if err != nil {
		return items, err
	}
	id, convErr := strconv.Atoi(idLine)
	if convErr != nil {
		fmt.Fprintln(out, "Invalid ID.")
		return items, nil
	}

	current, ok := catalog.FindByID(items, id)
	if !ok {
		fmt.Fprintln(out, "Item not found.")
		return items, nil
	}

	fmt.Fprintf(out, "New name (%s): ", current.Name)
	nameLine, err := readLine(reader)
	if err != nil {
		return items, err
	}
	fmt.Fprintf(out, "New description (%s): ", current.Description)
	descLine, err := readLine(reader)
	if err != nil {
		return items, err
	}

	// Empty input keeps the current value.
	var upd catalog.FieldUpdate
	if nameLine != "" {
		upd.Name = &nameLine
	}
	if descLine != "" {
		upd.Description = &descLine
	}

	if _, editErr := catalog.Edit(items, id, upd); editErr != nil {
		if errors.Is(editErr, catalog.ErrNotFound) {
			fmt.Fprintln(out, "Item not found.")
		} else {
			fmt.Fprintln(out, "Name and description cannot be empty.")
		}
		return items, nil
	}
	fmt.Fprintln(out, "Item updated!")
	return items, nil
}

// readLine reads one trimmed line of input.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
