// Package parser extracts structured order fields from the free-form
// notification text posted by delivery platform apps. Text formats are
// uncontrolled and change without notice upstream, so a miss is an
// expected outcome, not an error.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
)

// Supported delivery app package names.
const (
	PkgSwiggy    = "in.swiggy.deliveryapp"
	PkgZomato    = "com.zomato.delivery"
	PkgUberEats  = "com.ubercab.driver"
	PkgBigbasket = "com.bigbasket.delivery"
	PkgBlinkit   = "app.blinkit.partner"
	PkgZepto     = "com.zepto.rider"
)

// packageRemap translates retired package ids to their current ones for
// apps that migrated packages without migrating their users' configs.
var packageRemap = map[string]string{
	"in.swiggy.deliveryapp.beta":      PkgSwiggy,
	"com.application.zomato.delivery": PkgZomato,
	"com.grofers.delivery":            PkgBlinkit,
	"com.ubercab.eats.driver":         PkgUberEats,
}

var platformNames = map[string]string{
	PkgSwiggy:    "Swiggy",
	PkgZomato:    "Zomato",
	PkgUberEats:  "Uber Eats",
	PkgBigbasket: "Bigbasket",
	PkgBlinkit:   "Blinkit",
	PkgZepto:     "Zepto",
}

// Amount patterns, most specific first. Third-party apps use every
// imaginable rupee spelling.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*([0-9]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)\b(?:rs\.?|inr)\s*([0-9]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)\bearn(?:ings)?\b[^0-9]{0,10}([0-9]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?i)\b(?:payout|amount)\b[^0-9]{0,10}([0-9]+(?:\.[0-9]{1,2})?)`),
}

var (
	distancePattern = regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*km`)
	timePattern     = regexp.MustCompile(`(?i)([0-9]+)\s*min`)
)

// Remap returns the current package id for pkg, resolving any known
// package migration. Identity for packages that never migrated.
func Remap(pkg string) string {
	if cur, ok := packageRemap[pkg]; ok {
		return cur
	}
	return pkg
}

// Supported reports whether pkg (already remapped) is on the delivery-app
// allow-list.
func Supported(pkg string) bool {
	_, ok := platformNames[pkg]
	return ok
}

// PlatformName returns the human name for a supported package, "" otherwise.
func PlatformName(pkg string) string {
	return platformNames[pkg]
}

// Packages returns every supported package id.
func Packages() []string {
	out := make([]string, 0, len(platformNames))
	for pkg := range platformNames {
		out = append(out, pkg)
	}
	return out
}

// Parse extracts order fields from a notification. Returns (nil, false)
// when the text matches no known pattern.
func Parse(pkg string, notificationID int, postedAt time.Time, title, text string) (*domain.ParsedOrder, bool) {
	if !Supported(pkg) {
		return nil, false
	}

	combined := title + "\n" + text

	amount, ok := parseAmount(combined)
	if !ok {
		return nil, false
	}

	p := &domain.ParsedOrder{
		Platform: platformNames[pkg],
		Package:  pkg,
		Amount:   amount,
		Title:    title,
		Text:     text,
		PostedAt: postedAt,
	}

	if m := distancePattern.FindStringSubmatch(combined); m != nil {
		if km, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.DistanceKm = km
		}
	}
	if m := timePattern.FindStringSubmatch(combined); m != nil {
		if min, err := strconv.Atoi(m[1]); err == nil {
			p.TimeMin = min
		}
	}

	return p, true
}

func parseAmount(s string) (float64, bool) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
		if err != nil || v <= 0 {
			continue
		}
		return v, true
	}
	return 0, false
}
