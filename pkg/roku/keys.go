package roku

import "slices"

// Key is an ECP key name as accepted by /keypress, /keydown and /keyup.
type Key string

// ECP keys
const (
	KeyHome          Key = "Home"
	KeyReverse       Key = "Rev"
	KeyForward       Key = "Fwd"
	KeyPlay          Key = "Play"
	KeySelect        Key = "Select"
	KeyLeft          Key = "Left"
	KeyRight         Key = "Right"
	KeyDown          Key = "Down"
	KeyUp            Key = "Up"
	KeyBack          Key = "Back"
	KeyInstantReplay Key = "InstantReplay"
	KeyInfo          Key = "Info"
	KeyBackspace     Key = "Backspace"
	KeySearch        Key = "Search"
	KeyEnter         Key = "Enter"
	KeyFindRemote    Key = "FindRemote"
	KeyVolumeDown    Key = "VolumeDown"
	KeyVolumeUp      Key = "VolumeUp"
	KeyVolumeMute    Key = "VolumeMute"
	KeyChannelUp     Key = "ChannelUp"
	KeyChannelDown   Key = "ChannelDown"
	KeyInputTuner    Key = "InputTuner"
	KeyInputHDMI1    Key = "InputHDMI1"
	KeyInputHDMI2    Key = "InputHDMI2"
	KeyInputHDMI3    Key = "InputHDMI3"
	KeyInputHDMI4    Key = "InputHDMI4"
	KeyInputAV1      Key = "InputAV1"
	KeyPower         Key = "Power"
	KeyPowerOff      Key = "PowerOff"
	KeyPowerOn       Key = "PowerOn"
)

// Standard button names understood by the hub
const (
	ButtonHome          = "HOME"
	ButtonReverse       = "REVERSE"
	ButtonForward       = "FORWARD"
	ButtonPlay          = "PLAY"
	ButtonSelect        = "SELECT"
	ButtonLeft          = "LEFT"
	ButtonRight         = "RIGHT"
	ButtonDown          = "DOWN"
	ButtonUp            = "UP"
	ButtonBack          = "BACK"
	ButtonInstantReplay = "INSTANT_REPLAY"
	ButtonInfo          = "INFO"
	ButtonStar          = "STAR"
	ButtonOptions       = "OPTIONS"
	ButtonBackspace     = "BACKSPACE"
	ButtonSearch        = "SEARCH"
	ButtonEnter         = "ENTER"
	ButtonFindRemote    = "FIND_REMOTE"
	ButtonVolumeDown    = "VOLUME_DOWN"
	ButtonVolumeUp      = "VOLUME_UP"
	ButtonVolumeMute    = "VOLUME_MUTE"
	ButtonChannelUp     = "CHANNEL_UP"
	ButtonChannelDown   = "CHANNEL_DOWN"
	ButtonInputTuner    = "INPUT_TUNER"
	ButtonInputHDMI1    = "INPUT_HDMI1"
	ButtonInputHDMI2    = "INPUT_HDMI2"
	ButtonInputHDMI3    = "INPUT_HDMI3"
	ButtonInputHDMI4    = "INPUT_HDMI4"
	ButtonInputAV1      = "INPUT_AV1"
	ButtonPower         = "POWER"
	ButtonPowerOff      = "POWER_OFF"
	ButtonPowerOn       = "POWER_ON"
)

// Standard input names understood by the hub
const (
	InputTuner = "TUNER"
	InputHDMI1 = "HDMI1"
	InputHDMI2 = "HDMI2"
	InputHDMI3 = "HDMI3"
	InputHDMI4 = "HDMI4"
	InputAV1   = "AV1"
)

// ButtonKeys maps standard buttons to ECP keys.
// STAR and OPTIONS both send Info: the remote's * button.
var ButtonKeys = map[string]Key{
	ButtonHome:          KeyHome,
	ButtonReverse:       KeyReverse,
	ButtonForward:       KeyForward,
	ButtonPlay:          KeyPlay,
	ButtonSelect:        KeySelect,
	ButtonLeft:          KeyLeft,
	ButtonRight:         KeyRight,
	ButtonDown:          KeyDown,
	ButtonUp:            KeyUp,
	ButtonBack:          KeyBack,
	ButtonInstantReplay: KeyInstantReplay,
	ButtonInfo:          KeyInfo,
	ButtonStar:          KeyInfo,
	ButtonOptions:       KeyInfo,
	ButtonBackspace:     KeyBackspace,
	ButtonSearch:        KeySearch,
	ButtonEnter:         KeyEnter,
	ButtonFindRemote:    KeyFindRemote,
	ButtonVolumeDown:    KeyVolumeDown,
	ButtonVolumeUp:      KeyVolumeUp,
	ButtonVolumeMute:    KeyVolumeMute,
	ButtonChannelUp:     KeyChannelUp,
	ButtonChannelDown:   KeyChannelDown,
	ButtonInputTuner:    KeyInputTuner,
	ButtonInputHDMI1:    KeyInputHDMI1,
	ButtonInputHDMI2:    KeyInputHDMI2,
	ButtonInputHDMI3:    KeyInputHDMI3,
	ButtonInputHDMI4:    KeyInputHDMI4,
	ButtonInputAV1:      KeyInputAV1,
	ButtonPower:         KeyPower,
	ButtonPowerOff:      KeyPowerOff,
	ButtonPowerOn:       KeyPowerOn,
}

// InputKeys maps standard inputs to ECP keys.
var InputKeys = map[string]Key{
	InputTuner: KeyInputTuner,
	InputHDMI1: KeyInputHDMI1,
	InputHDMI2: KeyInputHDMI2,
	InputHDMI3: KeyInputHDMI3,
	InputHDMI4: KeyInputHDMI4,
	InputAV1:   KeyInputAV1,
}

// buttonNames returns the supported buttons in a stable order.
func buttonNames() []string {
	names := make([]string, 0, len(ButtonKeys))
	for name := range ButtonKeys {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
