package board

import (
	"context"
	"errors"

	"github.com/yusufpapurcu/wmi"

	"speccle/internal/collector/chain"
	"speccle/internal/snapshot"
)

type win32BaseBoard struct {
	Manufacturer string
	Product      string
}

func platformSources() []chain.Source[snapshot.Board] {
	return []chain.Source[snapshot.Board]{
		{Name: "wmi", Probe: readWMI},
	}
}

func readWMI(ctx context.Context) (snapshot.Board, error) {
	var boards []win32BaseBoard
	if err := wmi.Query("SELECT Manufacturer, Product FROM Win32_BaseBoard", &boards); err != nil {
		return snapshot.Board{}, err
	}
	if len(boards) == 0 {
		return snapshot.Board{}, errors.New("no Win32_BaseBoard instances")
	}

	return snapshot.Board{
		Manufacturer: boards[0].Manufacturer,
		Model:        boards[0].Product,
	}, nil
}
