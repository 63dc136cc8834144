// Command seed populates a running betcompare instance with demo betting
// houses and generated parameter values, through the public API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Default configuration constants.
const (
	defaultTimeout     = 30 * time.Second
	defaultSeedTimeout = 5 * time.Minute
)

// demoBets are the houses created when no count is given; with -bets N the
// list is cycled with numeric suffixes.
var demoBets = []demoBet{
	{Name: "Betano", Company: "Kaizen Gaming", Domain: "betano.bet.br", Scope: "Nacional"},
	{Name: "Bet365", Company: "Hillside", Domain: "bet365.bet.br", Scope: "Internacional"},
	{Name: "KTO", Company: "KTO Group", Domain: "kto.bet.br", Scope: "Nacional"},
	{Name: "Superbet", Company: "Superbet Group", Domain: "superbet.bet.br", Scope: "Internacional"},
	{Name: "Estrela Bet", Company: "Estrela Gaming", Domain: "estrelabet.bet.br", Scope: "Nacional"},
}

type demoBet struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Domain  string `json:"domain"`
	Status  string `json:"status"`
	Scope   string `json:"scope"`
}

type createdBet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type regenerateResult struct {
	BetID     string `json:"bet_id"`
	Generated int    `json:"generated"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numBets = flag.Int("bets", len(demoBets), "Number of bets to create")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), defaultSeedTimeout)
	defer cancel()

	client := &http.Client{Timeout: *timeout}

	if err := run(ctx, client, *baseURL, *numBets); err != nil {
		os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(ctx context.Context, client *http.Client, baseURL string, numBets int) error {
	for i := 0; i < numBets; i++ {
		b := demoBets[i%len(demoBets)]
		if i >= len(demoBets) {
			b.Name = fmt.Sprintf("%s %d", b.Name, i/len(demoBets)+1)
		}
		b.Status = "active"

		created, err := createBet(ctx, client, baseURL, b)
		if err != nil {
			return fmt.Errorf("create bet %q: %w", b.Name, err)
		}

		result, err := regenerate(ctx, client, baseURL, created.ID)
		if err != nil {
			return fmt.Errorf("regenerate %q: %w", b.Name, err)
		}
		fmt.Printf("seeded %-16s %s (%d parameters)\n", created.Name, created.ID, result.Generated)
	}
	return nil
}

func createBet(ctx context.Context, client *http.Client, baseURL string, b demoBet) (createdBet, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return createdBet{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/bets", bytes.NewReader(payload))
	if err != nil {
		return createdBet{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return createdBet{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return createdBet{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var created createdBet
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return createdBet{}, err
	}
	return created, nil
}

func regenerate(ctx context.Context, client *http.Client, baseURL, betID string) (regenerateResult, error) {
	url := fmt.Sprintf("%s/bets/%s/parameters/regenerate", baseURL, betID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, http.NoBody)
	if err != nil {
		return regenerateResult{}, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return regenerateResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return regenerateResult{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var result regenerateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return regenerateResult{}, err
	}
	return result, nil
}
