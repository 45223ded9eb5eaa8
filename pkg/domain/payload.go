package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Item is one decoded element of a JSON array payload.
type Item any

type Payload []byte

// ToItems decodes the payload as a JSON array. Numbers stay json.Number so
// IDs above 2^53 survive.
func (p Payload) ToItems() ([]Item, error) {
	items := []Item{}

	if len(p) == 0 {
		return items, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(p))
	decoder.UseNumber()

	if err := decoder.Decode(&items); err != nil {
		return nil, err
	}

	if decoder.More() {
		return nil, fmt.Errorf("unexpected data after JSON array")
	}

	return items, nil
}

func NewPayload(items []Item) (Payload, error) {
	if items == nil {
		items = []Item{}
	}

	return json.Marshal(items)
}

func sortedInputIDs[T any](byInputID map[string]T) []string {
	inputIDs := make([]string, 0, len(byInputID))

	for inputID := range byInputID {
		inputIDs = append(inputIDs, inputID)
	}

	sort.Strings(inputIDs)

	return inputIDs
}
