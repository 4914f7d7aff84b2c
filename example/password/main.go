// Package main demonstrates masked input for secrets.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/promptkit/ask"
)

func main() {
	fmt.Println("Password Example")
	fmt.Println("Typed characters are echoed as asterisks")
	fmt.Println()

	// The mask replaces every echoed character. Masked input never lands
	// in history, so it is safe to combine with WithFileHistory.
	p, err := ask.New("password: ", ask.WithMask('*'))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	secret, err := p.Ask()
	if err != nil {
		if errors.Is(err, ask.ErrInterrupted) {
			fmt.Println("Cancelled")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Got a %d character secret\n", len(secret))
}
