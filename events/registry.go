package events

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	registerType("Frame", EventFrame)
	registerType("Start", EventStart)
	registerType("ShootInput", EventShootInput)
	registerType("ReloadInput", EventReloadInput)
	registerType("TargetPicked", EventTargetPicked)
	registerType("PointerCaptureChanged", EventPointerCaptureChanged)
	registerType("End", EventEnd)
}

func registerType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}
