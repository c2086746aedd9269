// Package loader loads dungeon content into immutable definitions. Two
// authoring formats are supported: a JSON trio (rooms.json, items.json,
// enemies.json) and Lua files built with the Room/Item/Enemy constructors.
// A directory containing any .lua file takes the Lua path.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kariannharris-star/Dungeon-crawlr/engine/state"
	"github.com/kariannharris-star/Dungeon-crawlr/types"
)

// roomsFile is the top-level shape of rooms.json.
type roomsFile struct {
	Rooms        []types.RoomDef `json:"rooms"`
	StartingRoom string          `json:"starting_room"`
	Title        string          `json:"title,omitempty"`
	Intro        string          `json:"intro,omitempty"`
}

type itemsFile struct {
	Items []types.ItemDef `json:"items"`
}

type enemiesFile struct {
	Enemies []types.EnemyDef `json:"enemies"`
}

// Load reads dungeon content from dir, validates it, and returns the
// immutable Defs.
func Load(dir string) (*state.Defs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			return loadLua(dir)
		}
	}
	return loadJSON(dir)
}

func loadJSON(dir string) (*state.Defs, error) {
	var rf roomsFile
	if err := readJSON(filepath.Join(dir, "rooms.json"), &rf); err != nil {
		return nil, err
	}
	var itf itemsFile
	if err := readJSON(filepath.Join(dir, "items.json"), &itf); err != nil {
		return nil, err
	}
	var ef enemiesFile
	if err := readJSON(filepath.Join(dir, "enemies.json"), &ef); err != nil {
		return nil, err
	}

	defs := &state.Defs{
		Game: types.GameDef{
			Title: rf.Title,
			Start: rf.StartingRoom,
			Intro: rf.Intro,
		},
		Rooms:   make(map[string]types.RoomDef, len(rf.Rooms)),
		Items:   make(map[string]types.ItemDef, len(itf.Items)),
		Enemies: make(map[string]types.EnemyDef, len(ef.Enemies)),
	}
	if defs.Game.Title == "" {
		defs.Game.Title = "Dungeon Crawlr"
	}

	for _, room := range rf.Rooms {
		defs.Rooms[room.ID] = room
	}
	for _, item := range itf.Items {
		defs.Items[item.ID] = item
	}
	for _, enemy := range ef.Enemies {
		applyEnemyDefaults(&enemy)
		defs.Enemies[enemy.ID] = enemy
	}

	if err := validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// applyEnemyDefaults fills fields content authors commonly omit.
func applyEnemyDefaults(e *types.EnemyDef) {
	if e.MaxHP == 0 {
		e.MaxHP = e.HP
	}
	if e.Defense == 0 {
		e.Defense = 1
	}
}

// structValidate runs the declarative field checks on every definition.
// Violations are collected into the ValidationError rather than failing
// one at a time.
func structValidate(defs *state.Defs, ve *ValidationError) {
	v := validator.New(validator.WithRequiredStructEnabled())

	for id, room := range defs.Rooms {
		if err := v.Struct(room); err != nil {
			appendFieldErrors(ve, "room", id, err)
		}
	}
	for id, item := range defs.Items {
		if err := v.Struct(item); err != nil {
			appendFieldErrors(ve, "item", id, err)
		}
	}
	for id, enemy := range defs.Enemies {
		if err := v.Struct(enemy); err != nil {
			appendFieldErrors(ve, "enemy", id, err)
		}
	}
}

func appendFieldErrors(ve *ValidationError, kind, id string, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s %q: %v", kind, id, err))
		return
	}
	for _, fe := range fieldErrs {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"%s %q: field %s fails %q", kind, id, fe.Field(), fe.Tag()))
	}
}
