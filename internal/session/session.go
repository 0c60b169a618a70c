// Package session runs the interactive console menu over the cab and booking workflows.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cabbooking/internal/services"
)

type Session struct {
	In       io.Reader
	Out      io.Writer
	Cabs     services.CabService
	Bookings services.BookingService
	Receipts services.ReceiptService
	// Close releases the store on exit; nil skips it.
	Close func() error
}

// Run blocks until the operator chooses Exit, input ends, or ctx is cancelled.
// Workflow errors are printed and the loop continues.
func (s Session) Run(ctx context.Context) error {
	sc := bufio.NewScanner(s.In)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(s.Out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.Out, "\nCab Booking System")
		fmt.Fprintln(s.Out, "1. Add Cab")
		fmt.Fprintln(s.Out, "2. Book Cab")
		fmt.Fprintln(s.Out, "3. Exit")
		raw, ok := ask("Enter your choice: ")
		if !ok {
			return s.exit(sc.Err())
		}

		choice, err := strconv.Atoi(raw)
		if err != nil {
			choice = 0
		}

		switch choice {
		case 1:
			id, ok := ask("Enter cab ID: ")
			if !ok {
				return s.exit(sc.Err())
			}
			cabType, ok := ask("Enter cab type (Economy/Luxury): ")
			if !ok {
				return s.exit(sc.Err())
			}
			s.addCab(ctx, id, cabType)
		case 2:
			var fields [4]string
			prompts := [4]string{
				"Enter customer name: ",
				"Enter cab type (Economy/Luxury): ",
				"Enter pickup location: ",
				"Enter drop location: ",
			}
			for i, p := range prompts {
				if fields[i], ok = ask(p); !ok {
					return s.exit(sc.Err())
				}
			}
			s.bookCab(ctx, fields[0], fields[1], fields[2], fields[3])
		case 3:
			return s.exit(nil)
		default:
			fmt.Fprintln(s.Out, "Invalid choice. Try again.")
		}
	}
}

func (s Session) addCab(ctx context.Context, id, cabType string) {
	cab, err := s.Cabs.RegisterCab(ctx, id, cabType)
	if err != nil {
		fmt.Fprintln(s.Out, err.Error())
		return
	}
	fmt.Fprintf(s.Out, "Cab added successfully: %s (%s)\n", cab.ID, cab.Category)
}

func (s Session) bookCab(ctx context.Context, name, cabType, pickup, drop string) {
	b, err := s.Bookings.BookCab(ctx, name, cabType, pickup, drop)
	if err != nil {
		fmt.Fprintln(s.Out, err.Error())
		return
	}
	fmt.Fprintln(s.Out, "Booking confirmed!")
	fmt.Fprintln(s.Out, s.Receipts.Text(b))
}

func (s Session) exit(err error) error {
	if s.Close != nil {
		if cerr := s.Close(); cerr != nil {
			fmt.Fprintf(s.Out, "Error closing database connection: %v\n", cerr)
		} else {
			fmt.Fprintln(s.Out, "Database connection closed.")
		}
	}
	fmt.Fprintln(s.Out, "Exiting... Thank you!")
	return err
}
