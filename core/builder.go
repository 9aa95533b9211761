package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"gopkg.in/guregu/null.v3"
)

// ErrMissingPlayerID marks a combine row that cannot be keyed.
var ErrMissingPlayerID = errors.New("row has no usable player id")

// BuildPlayer maps a combine row onto a raw Player by column name. It does no
// I/O; team and scores are left empty.
func BuildPlayer(row []any, idx schema.ColumnIndex) (schema.Player, error) {
	id := idx.Int(row, schema.ColPlayerID)
	if !id.Valid {
		return schema.Player{}, ErrMissingPlayerID
	}

	return schema.Player{
		ID:                     id.Int64,
		FirstName:              idx.String(row, schema.ColFirstName),
		LastName:               idx.String(row, schema.ColLastName),
		Height:                 idx.Float(row, schema.ColHeight),
		Weight:                 idx.Float(row, schema.ColWeight),
		Wingspan:               idx.Float(row, schema.ColWingspan),
		StandingReach:          idx.Float(row, schema.ColStandingReach),
		VerticalLeap:           idx.Float(row, schema.ColStandingVertical),
		BenchPressReps:         idx.Int(row, schema.ColBenchPress),
		LaneAgilityTime:        idx.Float(row, schema.ColLaneAgility),
		ThreeQuarterSprintTime: idx.Float(row, schema.ColThreeQuarterSprint),
		MaxVerticalLeap:        idx.Float(row, schema.ColMaxVertical),
		BMI:                    idx.Float(row, schema.ColBodyFatPct),
	}, nil
}

// Enrich resolves the player's team. On any lookup failure the returned
// player has a null team and the error says why; the player is always usable.
func Enrich(ctx context.Context, lookup contract.TeamLookup, player schema.Player) (schema.Player, error) {
	team, err := lookup.LookupTeam(ctx, player.ID)
	if err != nil {
		player.Team = null.String{}
		return player, fmt.Errorf("error getting team for player %d: %w", player.ID, err)
	}
	player.Team = null.NewString(team, team != "")
	return player, nil
}
