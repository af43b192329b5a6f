package control

// The host application is reached only through the interfaces below. Each
// observer is called with the current value when it is added and again on
// every change.

// Resolution is the value range of every knob forwarded to the host.
const Resolution = 128

// TransportToggle identifies a boolean transport state.
type TransportToggle int

const (
	Playing TransportToggle = iota
	Recording
	WritingAutomation
	LoopActive
	ClickActive
	LauncherOverdubActive
	OverdubActive

	numTransportToggles
)

var transportToggleNames = [numTransportToggles]string{
	"playing", "recording", "write automation", "loop", "click", "launcher overdub", "overdub",
}

func (t TransportToggle) String() string {
	if t < 0 || t >= numTransportToggles {
		return "unknown"
	}
	return transportToggleNames[t]
}

type TransportObserver interface {
	TransportChanged(t TransportToggle, on bool)
}

type Transport interface {
	Stop()
	Play()
	Record()
	ToggleWriteArrangerAutomation()
	ToggleLoop()
	ToggleClick()
	ToggleLauncherOverdub()
	ToggleOverdub()
	AddObserver(TransportObserver)
}

type TrackObserver interface {
	MuteChanged(on bool)
	ArmChanged(on bool)
	SelectedChanged(on bool)
	SlotContentChanged(slot int, on bool)
}

// Track is one of the 8 channels of the bank window.
type Track interface {
	SetVolume(value, resolution int)
	SetPan(value, resolution int)
	SetSend(send, value, resolution int)
	ToggleMute()
	ToggleArm()
	SelectInMixer()
	CreateEmptyClip(slot, lengthBars int)
	AddObserver(TrackObserver)
}

type BankObserver interface {
	CanScrollTracksUpChanged(can bool)
	CanScrollTracksDownChanged(can bool)
}

type TrackBank interface {
	Track(index int) Track
	ScrollTracksPageUp()
	ScrollTracksPageDown()
	ScrollTracksPageLeft()
	ScrollTracksPageRight()
	AddObserver(BankObserver)
}

type CursorDeviceObserver interface {
	CanSelectNextChanged(can bool)
	CanSelectPreviousChanged(can bool)
}

type CursorDevice interface {
	SelectPrevious()
	SelectNext()
	AddObserver(CursorDeviceObserver)
}

// PrimaryDevice is the first device of the cursor track.
type PrimaryDevice interface {
	SetMacro(index, value, resolution int)
	SetParameter(index, value, resolution int)
	PreviousParameterPage()
	NextParameterPage()
	SwitchToPrevious()
	SwitchToNext()
}

type UserControls interface {
	Len() int
	Set(index, value, resolution int)
	SetLabel(index int, label string)
}

// IndicationTarget is a family of host parameters that can show which
// of them are currently under hardware control.
type IndicationTarget int

const (
	IndicateVolume IndicationTarget = iota
	IndicatePan
	IndicateSend0
	IndicateSend1
	IndicateMacro
	IndicateParameter
	IndicateUserControl

	NumIndicationTargets
)

type Indicator interface {
	SetIndication(target IndicationTarget, index int, on bool)
}

// NoteInput receives note messages passed through to the host.
type NoteInput interface {
	Note(status, data1, data2 byte)
}

type Preferences interface {
	AddInvertObserver(func(inverted bool))
}

type Host interface {
	Transport() Transport
	TrackBank() TrackBank
	CursorDevice() CursorDevice
	PrimaryDevice() PrimaryDevice
	UserControls() UserControls
	Indicator() Indicator
	NoteInput() NoteInput
	Preferences() Preferences
}

// Scheduler runs observer notifications on the surface's event queue.
type Scheduler interface {
	Schedule(fn func())
}

// Inline runs scheduled functions immediately on the caller's goroutine.
type Inline struct{}

func (Inline) Schedule(fn func()) { fn() }
