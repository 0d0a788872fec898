// romancheck verifies the romanization engine against a fixed set of
// known conversions, either in process or against a running server.
// It exits non-zero if any check fails, so it can gate deploys.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/neuryx/romanurdu/internal/translit"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

type checkCase struct {
	name string
	text string
	want string
}

var checkCases = []checkCase{
	{"full sentence", "یہ سوال امتحان میں آ سکتا ہے", "yeh sawal imtihan mein aa sakta hai"},
	{"formula preserved", "Formula = mc^2", "Formula = mc^2"},
	{"mixed script", "یہ test ہے", "yeh test hai"},
	{"plural oblique", "لڑکوں", "larkon"},
	{"digits", "۱۲۳", "123"},
	{"suffix ein", "باتیں", "batein"},
	{"suffix at", "معلومات", "malomat"},
	{"medial waw", "لوگ", "log"},
	{"ye before alif", "پیار", "pyar"},
	{"aspirated", "اچھا", "achha"},
	{"question mark", "کیا؟", "kya?"},
	{"urdu full stop", "ہے۔", "he."},
	{"parentheses", "(سوال)", "(soal)"},
	{"progressive", "میں بازار جا رہا ہوں", "mein bazar ja raha hoon"},
	{"modal plural", "وہ سکتے ہیں", "woh sakte hain"},
	{"whitespace collapse", "یہ   ہے", "yeh hai"},
}

var (
	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type result struct {
	checkCase
	got string
	err error
}

func (r result) ok() bool {
	return r.err == nil && r.got == r.want
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("FAIL"), err)
		os.Exit(1)
	}
}

func run() error {
	fs := ff.NewFlagSet("romancheck")

	serverURL := fs.StringLong("server", "", "Check a running server instead of the in-process engine (e.g. http://localhost:8080)")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("ROMANCHECK")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	romanize := func(text string) (string, error) {
		return translit.Romanize(text), nil
	}
	if *serverURL != "" {
		fmt.Println(dimStyle.Render("checking server at " + *serverURL))
		romanize = serverRomanizer(*serverURL)
	}

	results := lo.Map(checkCases, func(c checkCase, _ int) result {
		got, err := romanize(c.text)
		return result{checkCase: c, got: got, err: err}
	})

	for _, r := range results {
		if r.ok() {
			fmt.Println(passStyle.Render("PASS"), r.name)
			continue
		}
		fmt.Println(failStyle.Render("FAIL"), r.name)
		fmt.Println("  input:", r.text)
		fmt.Println("  want: ", r.want)
		if r.err != nil {
			fmt.Println("  error:", r.err)
		} else {
			fmt.Println("  got:  ", r.got)
		}
	}

	passed := lo.CountBy(results, func(r result) bool { return r.ok() })
	fmt.Printf("\n%d/%d checks passed\n", passed, len(results))

	if passed != len(results) {
		return fmt.Errorf("%d checks failed", len(results)-passed)
	}
	return nil
}

func serverRomanizer(baseURL string) func(string) (string, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	return func(text string) (string, error) {
		body, err := json.Marshal(map[string]string{"text": text})
		if err != nil {
			return "", err
		}

		resp, err := client.Post(baseURL+"/api/v1/romanize", "application/json", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("calling romanize endpoint: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("romanize endpoint returned %s", resp.Status)
		}

		var out struct {
			Roman string `json:"roman"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("decoding response: %w", err)
		}
		return out.Roman, nil
	}
}
