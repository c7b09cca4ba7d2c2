// Package resource implements the interactive client resource widgets: their data, scoring,
// persisted state and printable reports.
package resource

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrUnknownKind is returned for any resource type outside the known set.
var ErrUnknownKind = errors.New("resource not available")

// Kind is the closed set of resource widgets.
type Kind int

const (
	KindUnknown Kind = iota
	KindClientIntake
	KindProtocolBuilder
	KindPricingCalculator
	KindGutHealth
	KindNutrition
	KindStress
	KindHormone
	KindBloodSugar
	KindLabResults
)

type kindInfo struct {
	key     string
	title   string
	version int
}

var kinds = [...]kindInfo{
	KindUnknown:           {key: "", title: "Unknown resource"},
	KindClientIntake:      {key: "client-intake-form", title: "Client Intake Form", version: 1},
	KindProtocolBuilder:   {key: "protocol-builder", title: "Protocol Builder", version: 1},
	KindPricingCalculator: {key: "pricing-calculator", title: "Practice Pricing Calculator", version: 1},
	KindGutHealth:         {key: "gut-health-tracker", title: "Gut Health Tracker", version: 1},
	KindNutrition:         {key: "nutrition-assessment", title: "Nutrition Assessment", version: 1},
	KindStress:            {key: "stress-assessment", title: "Stress Assessment", version: 1},
	KindHormone:           {key: "hormone-symptom-checker", title: "Hormone Symptom Checker", version: 1},
	KindBloodSugar:        {key: "blood-sugar-tracker", title: "Blood Sugar Tracker", version: 1},
	KindLabResults:        {key: "lab-results-calculator", title: "Lab Results Calculator", version: 1},
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds)-1)
	for k := KindClientIntake; int(k) < len(kinds); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a resource type key to its Kind, KindUnknown if there is none.
func ParseKind(key string) Kind {
	for k := KindClientIntake; int(k) < len(kinds); k++ {
		if kinds[k].key == key {
			return k
		}
	}
	return KindUnknown
}

// Resolve is ParseKind returning ErrUnknownKind instead of KindUnknown.
func Resolve(key string) (Kind, error) {
	k := ParseKind(key)
	if k == KindUnknown {
		return KindUnknown, ErrUnknownKind
	}
	return k, nil
}

func (k Kind) valid() bool {
	return k > KindUnknown && int(k) < len(kinds)
}

// Key is the storage key and resource type string of the widget.
func (k Kind) Key() string {
	if !k.valid() {
		return ""
	}
	return kinds[k].key
}

func (k Kind) Title() string {
	if !k.valid() {
		return kinds[KindUnknown].title
	}
	return kinds[k].title
}

// SchemaVersion is the current version of the widget's stored data shape.
func (k Kind) SchemaVersion() int {
	if !k.valid() {
		return 0
	}
	return kinds[k].version
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].key
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Key())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var key string
	if err := json.Unmarshal(b, &key); err != nil {
		return err
	}
	*k = ParseKind(key)
	return nil
}

// Info describes a kind for listings.
type Info struct {
	Type          Kind   `json:"type"`
	Title         string `json:"title"`
	SchemaVersion int    `json:"schemaVersion"`
}

func Catalog() []Info {
	out := make([]Info, 0, len(kinds)-1)
	for _, k := range Kinds() {
		out = append(out, Info{Type: k, Title: k.Title(), SchemaVersion: k.SchemaVersion()})
	}
	return out
}
