package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/utils"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrMalformedRecord is returned when a response does not have the shape a
// Record needs.
var ErrMalformedRecord = errors.New("malformed record")

// statOrder is the display order of base stats, by PokéAPI stat name.
var statOrder = [data.StatCount]string{
	"hp",
	"attack",
	"defense",
	"special-attack",
	"special-defense",
	"speed",
}

type Pokemon struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BaseExperience *int   `json:"base_experience"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	Types          []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		Other struct {
			Home struct {
				FrontDefault *string `json:"front_default"`
			} `json:"home"`
		} `json:"other"`
	} `json:"sprites"`
}

// ToRecord validates the wire shape and converts it for the given source id.
func (p *Pokemon) ToRecord(id int) (*data.Record, error) {
	if p.ID != 0 && p.ID != id {
		return nil, fmt.Errorf("%w: id %d answered for request %d", ErrMalformedRecord, p.ID, id)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%w: id %d has no name", ErrMalformedRecord, id)
	}
	if len(p.Types) < 1 || len(p.Types) > 2 {
		return nil, fmt.Errorf("%w: id %d has %d types", ErrMalformedRecord, id, len(p.Types))
	}
	stats, err := p.orderedStats()
	if err != nil {
		return nil, fmt.Errorf("%w: id %d: %v", ErrMalformedRecord, id, err)
	}

	types := make([]string, len(p.Types))
	for i, t := range p.Types {
		if t.Type.Name == "" {
			return nil, fmt.Errorf("%w: id %d has an unnamed type", ErrMalformedRecord, id)
		}
		types[i] = t.Type.Name
	}

	r := &data.Record{
		ID:     id,
		Name:   p.Name,
		Types:  types,
		Height: p.Height,
		Weight: p.Weight,
		Stats:  data.StatsFromValues(stats),
	}
	if p.BaseExperience != nil {
		r.Experience = *p.BaseExperience
	}
	if url := p.Sprites.Other.Home.FrontDefault; url != nil {
		r.ImageURL = *url
	}
	return r, nil
}

// orderedStats maps stats by name when every entry is named, otherwise it
// falls back to position.
func (p *Pokemon) orderedStats() ([data.StatCount]int, error) {
	var out [data.StatCount]int
	if len(p.Stats) != data.StatCount {
		return out, fmt.Errorf("expected %d stats, got %d", data.StatCount, len(p.Stats))
	}

	named := true
	for _, s := range p.Stats {
		if s.Stat.Name == "" {
			named = false
			break
		}
	}
	if !named {
		for i, s := range p.Stats {
			out[i] = s.BaseStat
		}
		return out, nil
	}

	byName := make(map[string]int, len(p.Stats))
	for _, s := range p.Stats {
		if _, dup := byName[s.Stat.Name]; dup {
			return out, fmt.Errorf("duplicate stat %q", s.Stat.Name)
		}
		byName[s.Stat.Name] = s.BaseStat
	}
	for i, name := range statOrder {
		v, ok := byName[name]
		if !ok {
			return out, fmt.Errorf("missing stat %q", name)
		}
		out[i] = v
	}
	return out, nil
}

type PokeAPI struct {
	api *utils.API
}

func NewPokeAPI(baseURL string, client *http.Client) *PokeAPI {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PokeAPI{api: utils.NewAPIWithClient(baseURL, client)}
}

func (p *PokeAPI) GetPokemon(ctx context.Context, id int) (*data.Record, error) {
	if id < 1 {
		return nil, fmt.Errorf("invalid pokemon id %d", id)
	}
	var pokemon Pokemon
	if err := p.api.Get(ctx, fmt.Sprintf("/pokemon/%d", id), nil, &pokemon); err != nil {
		return nil, fmt.Errorf("fetching pokemon %d: %w", id, err)
	}
	return pokemon.ToRecord(id)
}
