package device

import "context"

// NullController is a no-op controller used when a stored device cannot be
// brought up (unknown protocol, broken config). It keeps the device listed
// so it can be renamed or removed through the API.
type NullController struct{}

// NewNullController creates a new NullController.
func NewNullController() *NullController {
	return &NullController{}
}

func (c *NullController) Buttons() []string {
	return []string{}
}

func (c *NullController) PressButton(ctx context.Context, button string) error {
	return ErrNotConnected
}

func (c *NullController) SwitchMode(ctx context.Context, oldMode, newMode string) error {
	return nil
}

func (c *NullController) SwitchInput(ctx context.Context, input string) error {
	return ErrNotConnected
}

func (c *NullController) PowerState(ctx context.Context) (PowerState, error) {
	return PowerOff, nil
}

func (c *NullController) Apps(ctx context.Context) ([]App, error) {
	return nil, ErrNotConnected
}

func (c *NullController) ActiveApp(ctx context.Context) (*ActiveApp, error) {
	return nil, ErrNotConnected
}

func (c *NullController) Launch(ctx context.Context, app string, params map[string]string) (App, error) {
	return App{}, ErrNotConnected
}

func (c *NullController) Info(ctx context.Context) (Info, error) {
	return nil, ErrNotConnected
}

func (c *NullController) MediaPlayer(ctx context.Context) (*MediaPlayer, error) {
	return nil, ErrNotConnected
}

func (c *NullController) Icon(ctx context.Context, appID string) (*Icon, error) {
	return nil, ErrNotConnected
}

func (c *NullController) Search(ctx context.Context, query SearchQuery) error {
	return ErrNotConnected
}

func (c *NullController) TypeText(ctx context.Context, text string) error {
	return ErrNotConnected
}

func (c *NullController) Status(ctx context.Context) (*Status, error) {
	return nil, ErrNotConnected
}

// NullEventSubscriber is a no-op event subscriber used when discovery is disabled.
type NullEventSubscriber struct{}

// NewNullEventSubscriber creates a new NullEventSubscriber.
func NewNullEventSubscriber() *NullEventSubscriber {
	return &NullEventSubscriber{}
}

func (s *NullEventSubscriber) Subscribe() chan DiscoveryEvent {
	ch := make(chan DiscoveryEvent)
	// Channel is never sent to
	return ch
}

func (s *NullEventSubscriber) Unsubscribe(ch chan DiscoveryEvent) {
	close(ch)
}
