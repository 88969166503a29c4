package world

import "github.com/mdhenderson/gnusto/internal/ids"

// Well-known item/location AttributeIDs (spec sections 3.4/3.5).
// Blueprints may define additional game-specific attributes under any
// other AttributeID; these are simply the ones the built-in verb
// handlers know how to interpret.
const (
	AttrName        ids.AttributeID = "name"
	AttrDescription ids.AttributeID = "description"
	AttrAdjectives  ids.AttributeID = "adjectives"
	AttrSynonyms    ids.AttributeID = "synonyms"
	AttrSize        ids.AttributeID = "size"
	AttrCapacity    ids.AttributeID = "capacity"
	AttrLockKey     ids.AttributeID = "lockKey"

	AttrIsTakable     ids.AttributeID = "isTakable"
	AttrIsContainer   ids.AttributeID = "isContainer"
	AttrIsSurface     ids.AttributeID = "isSurface"
	AttrIsOpenable    ids.AttributeID = "isOpenable"
	AttrIsOpen        ids.AttributeID = "isOpen"
	AttrIsLockable    ids.AttributeID = "isLockable"
	AttrIsLocked      ids.AttributeID = "isLocked"
	AttrIsWearable    ids.AttributeID = "isWearable"
	AttrIsWorn        ids.AttributeID = "isWorn"
	AttrIsDevice      ids.AttributeID = "isDevice"
	AttrIsLightSource ids.AttributeID = "isLightSource"
	AttrIsOn          ids.AttributeID = "isOn"
	AttrIsTouched     ids.AttributeID = "isTouched"
	AttrIsScenery     ids.AttributeID = "isScenery"
	AttrIsEdible      ids.AttributeID = "isEdible"
	AttrIsReadable    ids.AttributeID = "isReadable"
	AttrIsTransparent ids.AttributeID = "isTransparent"

	AttrInherentlyLit ids.AttributeID = "inherentlyLit"
	AttrIsSacred      ids.AttributeID = "isSacred"
)
