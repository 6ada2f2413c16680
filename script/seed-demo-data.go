package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"time"
)

// expensePattern describes how often a category shows up in a month and
// what a single entry usually costs.
type expensePattern struct {
	Category     string
	PerMonth     int
	MinAmount    float64
	MaxAmount    float64
	Descriptions []string
}

var expensePatterns = []expensePattern{
	{"Food", 10, 8, 60, []string{"groceries", "lunch", "market run", "coffee and snacks"}},
	{"Transport", 6, 2, 40, []string{"metro card", "fuel", "taxi", "bike repair"}},
	{"Shopping", 3, 15, 120, []string{"clothes", "household bits", "gift", ""}},
	{"Utilities", 2, 40, 90, []string{"electricity", "internet", "water"}},
	{"Entertainment", 3, 10, 50, []string{"cinema", "streaming", "concert tickets", ""}},
	{"Health", 1, 15, 80, []string{"pharmacy", "dentist", "gym"}},
}

// seedStats counts what the run managed to post
type seedStats struct {
	Posted int
	Failed int
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the running server")
	username := flag.String("user", "demo", "Username to create or sign into")
	passcode := flag.String("passcode", "1234567890", "10-digit passcode for the account")
	months := flag.Int("months", 6, "How many months of history to generate")
	seed := flag.Int64("seed", 42, "Random seed, so reruns produce the same ledger")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	jar, err := cookiejar.New(nil)
	if err != nil {
		fmt.Println("Failed to create cookie jar:", err)
		os.Exit(1)
	}
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	if err := signIn(client, *baseURL, *username, *passcode); err != nil {
		fmt.Println("Failed to sign in:", err)
		os.Exit(1)
	}
	fmt.Printf("Signed in as %q\n", *username)

	stats := &seedStats{}
	now := time.Now()

	for monthsBack := *months - 1; monthsBack >= 0; monthsBack-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -monthsBack, 0)

		// Salary lands on the first, rent leaves right after
		postEntry(client, *baseURL, stats, "income", jitter(rng, 3000, 3400), "Salary",
			"monthly salary", first)
		postEntry(client, *baseURL, stats, "expense", jitter(rng, 850, 950), "Rent",
			"rent", first.AddDate(0, 0, 1))

		for _, pattern := range expensePatterns {
			for i := 0; i < pattern.PerMonth; i++ {
				day := first.AddDate(0, 0, rng.Intn(27)+1)
				if day.After(now) {
					continue
				}
				amount := jitter(rng, pattern.MinAmount, pattern.MaxAmount)
				description := pattern.Descriptions[rng.Intn(len(pattern.Descriptions))]
				postEntry(client, *baseURL, stats, "expense", amount, pattern.Category,
					description, day)
			}
		}
	}

	fmt.Printf("Done: %d entries posted, %d failed\n", stats.Posted, stats.Failed)
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// signIn creates the account, or signs into it when it already exists
func signIn(client *http.Client, baseURL, username, passcode string) error {
	signupForm := url.Values{
		"username":         {username},
		"passcode":         {passcode},
		"confirm_passcode": {passcode},
	}
	resp, err := client.PostForm(baseURL+"/signup", signupForm)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if hasSession(client, baseURL) {
		return nil
	}

	loginForm := url.Values{
		"username": {username},
		"passcode": {passcode},
	}
	resp, err = client.PostForm(baseURL+"/login", loginForm)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if !hasSession(client, baseURL) {
		return fmt.Errorf("no session cookie after signup and login (status %d)", resp.StatusCode)
	}
	return nil
}

// hasSession reports whether the cookie jar holds a session for the server
func hasSession(client *http.Client, baseURL string) bool {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	for _, cookie := range client.Jar.Cookies(parsed) {
		if cookie.Value != "" {
			return true
		}
	}
	return false
}

// postEntry records one ledger entry through the form endpoint
func postEntry(client *http.Client, baseURL string, stats *seedStats,
	kind string, amount float64, category, description string, date time.Time) {
	form := url.Values{
		"kind":        {kind},
		"amount":      {fmt.Sprintf("%.2f", amount)},
		"category":    {category},
		"description": {description},
		"date":        {date.Format("2006-01-02")},
	}

	resp, err := client.PostForm(baseURL+"/transactions", form)
	if err != nil {
		fmt.Println("Request failed:", err)
		stats.Failed++
		return
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Entry rejected (%d): %s %s on %s\n",
			resp.StatusCode, category, form.Get("amount"), form.Get("date"))
		stats.Failed++
		return
	}
	stats.Posted++
}

// jitter picks a plausible amount between lo and hi
func jitter(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
