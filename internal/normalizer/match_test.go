package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTeam(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"New York Yankees", "new york yankees", true},
		{"NY Yankees", "New York Yankees", true},
		{"Yankees", "New York Yankees", true},
		{"Los Angeles Dodgers", "LA Dodgers", true},
		{"Los Angeles Dodgers", "Los Angeles Angels", true},
		{"New York Mets", "New York Yankees", true},
		{"New York", "New York Mets", true},
		{"Chicago Cubs", "Chicago White Sox", false},
		{"Chicago White Sox", "White Sox", true},
		{"Boston Red Sox", "Chicago White Sox", false},
		{"Boston Red Sox", "Red Sox", true},
		{"D-backs", "Arizona Diamondbacks", false},
		{"Arizona Diamondbacks", "diamondbacks", true},
		{"St. Louis Cardinals", "St Louis Cardinals", true},
		{"The Athletics", "Athletics", true},
		{"", "", false},
		{"Seattle Mariners", "Texas Rangers", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MatchTeam(c.a, c.b), "%q vs %q", c.a, c.b)
	}
}

func TestMatchTeamSymmetric(t *testing.T) {
	names := []string{"New York Yankees", "Yankees", "New York Mets", "LA Dodgers", "Los Angeles Angels", "Red Sox", "Boston Red Sox"}
	for _, a := range names {
		for _, b := range names {
			assert.Equal(t, MatchTeam(a, b), MatchTeam(b, a), "%q vs %q", a, b)
		}
	}
}

func TestBestMatchPrefersNickname(t *testing.T) {
	names := []string{"Los Angeles Angels", "Los Angeles Dodgers", "New York Mets", "New York Yankees"}
	assert.Equal(t, 1, BestMatch("LA Dodgers", names))
	assert.Equal(t, 1, BestMatch("Dodgers", names))
	assert.Equal(t, 3, BestMatch("new york yankees", names))
	assert.Equal(t, 0, BestMatch("Los Angeles", names))
	assert.Equal(t, -1, BestMatch("Seattle Mariners", names))
	assert.Equal(t, -1, BestMatch("", names))
}
