package lifecycle

// StateError reports an operation attempted against an entity whose current
// status forbids it. The operation aborts with no partial state change.
type StateError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	CodeInvalidTransition = "invalid_transition"
	CodeVehicleBusy       = "vehicle_busy"
	CodeDriverBusy        = "driver_busy"
)

func (e *StateError) Error() string {
	return e.Message
}
