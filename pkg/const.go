package pkg

const (
	Register     = "register"
	Exit         = "exit"
	Shoot        = "shoot"
	ShootOutcome = "shoot-outcome"
	PlaceShip    = "place"
	Placed       = "placed"
	Reset        = "reset"
	Wait         = "wait"
	Retry        = "retry"
	Win          = "win"
	Lose         = "lose"
	Info         = "info"
)

const (
	ListRooms  = "ls-rooms"
	CreateRoom = "create-room"
	JoinRoom   = "join-room"
	JoinRandom = "join-random"
)
