package board

import (
	"context"
	"errors"

	"github.com/jaypipes/ghw"

	"speccle/internal/snapshot"
)

func readGHW(ctx context.Context) (snapshot.Board, error) {
	info, err := ghw.Baseboard()
	if err != nil {
		return snapshot.Board{}, err
	}
	if info.Vendor == "" && info.Product == "" {
		return snapshot.Board{}, errors.New("baseboard not reported")
	}

	return snapshot.Board{
		Manufacturer: info.Vendor,
		Model:        info.Product,
	}, nil
}
