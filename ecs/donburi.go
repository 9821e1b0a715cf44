package ecs

import (
	"github.com/phanxgames/dominoes"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// PointerMovedEventType is the Donburi event type for pointer movement.
var PointerMovedEventType = events.NewEventType[dominoes.PointerEvent]()

// TileComponent holds one domino tile.
var TileComponent = donburi.NewComponentType[dominoes.Tile]()

// TileIndexComponent holds the tile's position in the game's draw order.
var TileIndexComponent = donburi.NewComponentType[int]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Pointer events are published to PointerMovedEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dominoes.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitPointerMove(event dominoes.PointerEvent) {
	PointerMovedEventType.Publish(s.world, event)
}

// SpawnTiles creates one entity per tile of g, in draw order, and returns
// the new entities.
func SpawnTiles(world donburi.World, g *dominoes.Game) []donburi.Entity {
	tiles := g.Tiles()
	entities := make([]donburi.Entity, len(tiles))
	for i := range tiles {
		e := world.Create(TileComponent, TileIndexComponent)
		entry := world.Entry(e)
		TileComponent.SetValue(entry, tiles[i])
		TileIndexComponent.SetValue(entry, i)
		entities[i] = e
	}
	return entities
}

// TileQuery matches every entity created by SpawnTiles.
func TileQuery() *donburi.Query {
	return donburi.NewQuery(filter.Contains(TileComponent, TileIndexComponent))
}
