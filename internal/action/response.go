package action

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// ResponseKind_e enumerates ActionResponse's closed taxonomy of
// expected handler failures (spec section 7).
type ResponseKind_e int

const (
	RespUnknown ResponseKind_e = iota
	ItemNotAccessible
	ItemNotHeld
	ItemNotTakable
	ItemNotDroppable
	ItemNotOpenable
	ItemNotClosable
	ItemNotLockable
	ItemNotUnlockable
	ItemNotReadable
	ItemNotEdible
	ItemNotWearable
	ItemNotRemovable
	ItemAlreadyOpen
	ItemAlreadyClosed
	ItemIsLocked
	ItemIsUnlocked
	ItemIsAlreadyWorn
	ItemIsNotWorn
	ContainerIsClosed
	ContainerIsOpen
	ItemNotInContainer
	ItemNotOnSurface
	ItemTooLargeForContainer
	PlayerCannotCarryMore
	WrongKey
	TargetIsNotAContainer
	TargetIsNotASurface
	ToolMissing
	DirectionIsBlocked
	InvalidDirection
	PrerequisiteNotMet
	InvalidIndirectObject
	InvalidValue
	UnknownVerb
	UnknownEntity
	RoomIsDark
	StateValidationFailed
	InternalEngineError
	Custom
)

// NameLookup resolves an ItemID to its display name, used to render
// messages that mention "the <name>".
type NameLookup func(ids.ItemID) string

// ActionResponse is a typed, expected failure raised by a handler's
// validate or process step (spec section 7). Exactly one constructor
// below should be used per Kind; fields not relevant to a Kind are
// left zero.
type ActionResponse struct {
	Kind ResponseKind_e

	ID      ids.ItemID // the item the response is about
	OtherID ids.ItemID // a second item: container/surface/lock/key

	Word    string // unknownVerb
	Name    string // toolMissing, invalidIndirectObject
	Message string // prerequisiteNotMet, invalidValue, internalEngineError, custom
	Ref     values.EntityReference

	Reason string // directionIsBlocked

	Change            interface{ String() string } // stateValidationFailed's offending StateChange
	ActualOldValue    *values.StateValue
	HasActualOldValue bool

	Carried  int // playerCannotCarryMore: size that would be carried
	Capacity int // playerCannotCarryMore: the player's CarryingCapacity
}

func ItemNotAccessibleResponse(id ids.ItemID) ActionResponse { return ActionResponse{Kind: ItemNotAccessible, ID: id} }
func ItemNotHeldResponse(id ids.ItemID) ActionResponse       { return ActionResponse{Kind: ItemNotHeld, ID: id} }
func ItemNotTakableResponse(id ids.ItemID) ActionResponse    { return ActionResponse{Kind: ItemNotTakable, ID: id} }
func ItemNotDroppableResponse(id ids.ItemID) ActionResponse  { return ActionResponse{Kind: ItemNotDroppable, ID: id} }
func ItemNotOpenableResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ItemNotOpenable, ID: id} }
func ItemNotClosableResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ItemNotClosable, ID: id} }
func ItemNotLockableResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ItemNotLockable, ID: id} }
func ItemNotUnlockableResponse(id ids.ItemID) ActionResponse { return ActionResponse{Kind: ItemNotUnlockable, ID: id} }
func ItemNotReadableResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ItemNotReadable, ID: id} }
func ItemNotEdibleResponse(id ids.ItemID) ActionResponse     { return ActionResponse{Kind: ItemNotEdible, ID: id} }
func ItemNotWearableResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ItemNotWearable, ID: id} }
func ItemNotRemovableResponse(id ids.ItemID) ActionResponse  { return ActionResponse{Kind: ItemNotRemovable, ID: id} }
func ItemAlreadyOpenResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ItemAlreadyOpen, ID: id} }
func ItemAlreadyClosedResponse(id ids.ItemID) ActionResponse { return ActionResponse{Kind: ItemAlreadyClosed, ID: id} }
func ItemIsLockedResponse(id ids.ItemID) ActionResponse      { return ActionResponse{Kind: ItemIsLocked, ID: id} }
func ItemIsUnlockedResponse(id ids.ItemID) ActionResponse    { return ActionResponse{Kind: ItemIsUnlocked, ID: id} }
func ItemIsAlreadyWornResponse(id ids.ItemID) ActionResponse { return ActionResponse{Kind: ItemIsAlreadyWorn, ID: id} }
func ItemIsNotWornResponse(id ids.ItemID) ActionResponse     { return ActionResponse{Kind: ItemIsNotWorn, ID: id} }
func ContainerIsClosedResponse(id ids.ItemID) ActionResponse { return ActionResponse{Kind: ContainerIsClosed, ID: id} }
func ContainerIsOpenResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: ContainerIsOpen, ID: id} }

func ItemNotInContainerResponse(item, container ids.ItemID) ActionResponse {
	return ActionResponse{Kind: ItemNotInContainer, ID: item, OtherID: container}
}
func ItemNotOnSurfaceResponse(item, surface ids.ItemID) ActionResponse {
	return ActionResponse{Kind: ItemNotOnSurface, ID: item, OtherID: surface}
}
func ItemTooLargeForContainerResponse(item, container ids.ItemID) ActionResponse {
	return ActionResponse{Kind: ItemTooLargeForContainer, ID: item, OtherID: container}
}

func PlayerCannotCarryMoreResponse(carried, capacity int) ActionResponse {
	return ActionResponse{Kind: PlayerCannotCarryMore, Carried: carried, Capacity: capacity}
}

func WrongKeyResponse(key, lock ids.ItemID) ActionResponse {
	return ActionResponse{Kind: WrongKey, ID: key, OtherID: lock}
}

func TargetIsNotAContainerResponse(id ids.ItemID) ActionResponse { return ActionResponse{Kind: TargetIsNotAContainer, ID: id} }
func TargetIsNotASurfaceResponse(id ids.ItemID) ActionResponse   { return ActionResponse{Kind: TargetIsNotASurface, ID: id} }
func ToolMissingResponse(name string) ActionResponse             { return ActionResponse{Kind: ToolMissing, Name: name} }

func DirectionIsBlockedResponse(reason string) ActionResponse { return ActionResponse{Kind: DirectionIsBlocked, Reason: reason} }
func InvalidDirectionResponse() ActionResponse                 { return ActionResponse{Kind: InvalidDirection} }

func PrerequisiteNotMetResponse(message string) ActionResponse { return ActionResponse{Kind: PrerequisiteNotMet, Message: message} }
func InvalidIndirectObjectResponse(name string) ActionResponse { return ActionResponse{Kind: InvalidIndirectObject, Name: name} }
func InvalidValueResponse(message string) ActionResponse       { return ActionResponse{Kind: InvalidValue, Message: message} }

func UnknownVerbResponse(word string) ActionResponse     { return ActionResponse{Kind: UnknownVerb, Word: word} }
func UnknownEntityResponse(ref values.EntityReference) ActionResponse {
	return ActionResponse{Kind: UnknownEntity, Ref: ref}
}

func RoomIsDarkResponse() ActionResponse { return ActionResponse{Kind: RoomIsDark} }

func StateValidationFailedResponse(change interface{ String() string }, actual *values.StateValue) ActionResponse {
	r := ActionResponse{Kind: StateValidationFailed, Change: change}
	if actual != nil {
		r.ActualOldValue = actual
		r.HasActualOldValue = true
	}
	return r
}

func InternalEngineErrorResponse(msg string) ActionResponse { return ActionResponse{Kind: InternalEngineError, Message: msg} }
func CustomResponse(message string) ActionResponse          { return ActionResponse{Kind: Custom, Message: message} }

// Render produces the user-visible line for r, resolving item names
// through name (spec section 7's message table). touched reports
// whether the player has touched the item referenced by ID, which
// changes the wording of itemNotAccessible per the table's footnote.
func (r ActionResponse) Render(name NameLookup, touched bool) string {
	n := func(id ids.ItemID) string { return name(id) }
	switch r.Kind {
	case ItemNotAccessible:
		if touched {
			return fmt.Sprintf("You can't see the %s.", n(r.ID))
		}
		return "You can't see any such thing."
	case ItemNotHeld:
		return fmt.Sprintf("You aren't holding the %s.", n(r.ID))
	case ItemNotTakable:
		return fmt.Sprintf("You can't take the %s.", n(r.ID))
	case ItemNotDroppable:
		return fmt.Sprintf("You can't drop the %s.", n(r.ID))
	case ItemNotOpenable:
		return fmt.Sprintf("You can't open the %s.", n(r.ID))
	case ItemNotClosable:
		return fmt.Sprintf("You can't close the %s.", n(r.ID))
	case ItemNotLockable:
		return fmt.Sprintf("You can't lock the %s.", n(r.ID))
	case ItemNotUnlockable:
		return fmt.Sprintf("You can't unlock the %s.", n(r.ID))
	case ItemNotReadable:
		return fmt.Sprintf("You can't read the %s.", n(r.ID))
	case ItemNotEdible:
		return fmt.Sprintf("You can't eat the %s.", n(r.ID))
	case ItemNotWearable:
		return fmt.Sprintf("You can't wear the %s.", n(r.ID))
	case ItemNotRemovable:
		return fmt.Sprintf("You can't remove the %s.", n(r.ID))
	case ItemAlreadyOpen:
		return fmt.Sprintf("The %s is already open.", n(r.ID))
	case ItemAlreadyClosed:
		return fmt.Sprintf("The %s is already closed.", n(r.ID))
	case ItemIsLocked:
		return fmt.Sprintf("The %s is locked.", n(r.ID))
	case ItemIsUnlocked:
		return fmt.Sprintf("The %s is unlocked.", n(r.ID))
	case ItemIsAlreadyWorn:
		return fmt.Sprintf("You are already wearing the %s.", n(r.ID))
	case ItemIsNotWorn:
		return fmt.Sprintf("You aren't wearing the %s.", n(r.ID))
	case ContainerIsClosed:
		return fmt.Sprintf("The %s is closed.", n(r.ID))
	case ContainerIsOpen:
		return fmt.Sprintf("The %s is open.", n(r.ID))
	case ItemNotInContainer:
		return fmt.Sprintf("The %s isn't in the %s.", n(r.ID), n(r.OtherID))
	case ItemNotOnSurface:
		return fmt.Sprintf("The %s isn't on the %s.", n(r.ID), n(r.OtherID))
	case ItemTooLargeForContainer:
		return fmt.Sprintf("The %s won't fit in the %s.", n(r.ID), n(r.OtherID))
	case PlayerCannotCarryMore:
		return fmt.Sprintf("You are carrying too much (%s of %s capacity).",
			humanize.Comma(int64(r.Carried)), humanize.Comma(int64(r.Capacity)))
	case WrongKey:
		return fmt.Sprintf("The %s doesn't fit the %s.", n(r.ID), n(r.OtherID))
	case TargetIsNotAContainer:
		return fmt.Sprintf("You can't put anything in the %s.", n(r.ID))
	case TargetIsNotASurface:
		return fmt.Sprintf("You can't put anything on the %s.", n(r.ID))
	case ToolMissing:
		return fmt.Sprintf("You don't have a %s.", r.Name)
	case DirectionIsBlocked:
		if r.Reason != "" {
			return r.Reason
		}
		return "You can't go that way."
	case InvalidDirection:
		return "You can't go that way."
	case PrerequisiteNotMet:
		return r.Message
	case InvalidIndirectObject:
		return fmt.Sprintf("You can't use the %s that way.", r.Name)
	case InvalidValue:
		return r.Message
	case UnknownVerb:
		return fmt.Sprintf("I don't know the verb %q.", r.Word)
	case UnknownEntity:
		return "You can't see any such thing."
	case RoomIsDark:
		return "The darkness here is absolute. You are likely to be eaten by a grue."
	case StateValidationFailed, InternalEngineError:
		return "Something has gone wrong with the game. Your last action had no effect."
	case Custom:
		return r.Message
	default:
		return "Something has gone wrong with the game. Your last action had no effect."
	}
}
