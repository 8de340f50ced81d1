package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

type FlyerTag struct{}

var FlyerTagComponent = NewComponent[FlyerTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

type BackgroundTag struct{}

var BackgroundTagComponent = NewComponent[BackgroundTag]()
