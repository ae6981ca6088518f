package generation

// Handle identifies an object created in a World
type Handle uint64

// ObjectKind names the kinds of object the generator can place
type ObjectKind string

const (
	ObjectPlatform ObjectKind = "platform"
	ObjectLadder   ObjectKind = "ladder"
	ObjectPortal   ObjectKind = "portal"
	ObjectHeart    ObjectKind = "heart"
	ObjectCoin     ObjectKind = "coin"
)

// World receives placement decisions. Implementations own the actual
// objects; the generator only keeps handles so it can destroy them later.
type World interface {
	CreatePlatform(x, y float64, widthTiles int) Handle
	// CreateLadder places a ladder whose bottom rests at bottomY
	CreateLadder(x, bottomY float64, heightTiles int) Handle
	CreatePortal(x, y, targetX, targetY float64) Handle
	CreateHeartPickup(x, y float64) Handle
	CreateCoin(x, y float64) Handle
	Destroy(h Handle)
}
