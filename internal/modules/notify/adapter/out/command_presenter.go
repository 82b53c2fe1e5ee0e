package out

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"lifeagent/internal/modules/notify/domain"
	notifyout "lifeagent/internal/modules/notify/port/out"
)

const defaultCommandTimeout = 5 * time.Second

// CommandPresenter runs a desktop notifier binary such as notify-send with the
// title and message as its last two arguments.
type CommandPresenter struct {
	argv    []string
	timeout time.Duration
}

func NewCommandPresenter(command string) notifyout.Presenter {
	return &CommandPresenter{argv: strings.Fields(command), timeout: defaultCommandTimeout}
}

func (p *CommandPresenter) Name() string { return "command" }

func (p *CommandPresenter) Present(ctx context.Context, event domain.Event) error {
	if len(p.argv) == 0 {
		return fmt.Errorf("notifier command is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	args := append(append([]string(nil), p.argv[1:]...), event.Title, event.Message)
	output, err := exec.CommandContext(ctx, p.argv[0], args...).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %s", domain.ErrPresenterTimeout, p.argv[0])
	}
	if err != nil {
		return fmt.Errorf("run %s: %w: %s", p.argv[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
