// Package ecs provides ECS adapters for dominoes.
//
// [NewDonburiStore] bridges pointer movement into a [Donburi] world as typed
// events. Subscribe to [PointerMovedEventType] in your ECS systems to receive
// them. [SpawnTiles] mirrors a game's tiles as entities carrying
// [TileComponent], so systems can query them like any other component.
//
// Usage:
//
//	world := donburi.NewWorld()
//	game.SetEntityStore(ecs.NewDonburiStore(world))
//	ecs.SpawnTiles(world, game)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
