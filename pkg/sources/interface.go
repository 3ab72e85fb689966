package sources

import (
	"context"

	"github.com/kerbaras/pokedex/pkg/data"
)

type Source interface {
	GetPokemon(ctx context.Context, id int) (*data.Record, error)
}
