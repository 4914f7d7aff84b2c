// Package main demonstrates the two autocomplete behaviors.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/promptkit/ask"
)

var commands = []string{
	"help", "list", "create", "delete", "update", "status", "exit",
}

func main() {
	fmt.Println("Autocomplete Example")
	fmt.Println("Press Tab to cycle through matching commands")
	fmt.Println("Type 'suggest' to switch to the suggestion grid")
	fmt.Println("Type 'exit' to quit")
	fmt.Println()

	// Cycle mode replaces the line with successive candidates on each
	// Tab press.
	p, err := ask.New("app> ", ask.WithAutocomplete(ask.Autocomplete{
		Search:   ask.PrefixSearch(commands),
		Behavior: ask.BehaviorCycle,
	}))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	for {
		result, err := p.Ask()
		if err != nil {
			if errors.Is(err, ask.ErrInterrupted) {
				fmt.Println("Goodbye!")
				return
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		result = strings.TrimSpace(result)
		switch result {
		case "":
			continue
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "suggest":
			runSuggest()
			return
		case "help":
			fmt.Println("Commands:", strings.Join(commands, ", "))
		default:
			fmt.Printf("Executed: %s\n", result)
		}
	}
}

// runSuggest shows the non-destructive grid: Tab lists matches below the
// line instead of replacing it. FuzzySearch ranks close matches first.
func runSuggest() {
	p, err := ask.New("fuzzy> ", ask.WithAutocomplete(ask.Autocomplete{
		Search:   ask.FuzzySearch(commands),
		Behavior: ask.BehaviorSuggest,
	}))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	for {
		result, err := p.Ask()
		if err != nil {
			if errors.Is(err, ask.ErrInterrupted) {
				fmt.Println("Goodbye!")
				return
			}
			log.Printf("Error: %v\n", err)
			continue
		}
		if result == "exit" {
			fmt.Println("Goodbye!")
			return
		}
		fmt.Printf("Executed: %s\n", result)
	}
}
