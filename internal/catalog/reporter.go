package catalog

import (
	"bytes"
	"fmt"
	. "github.com/half-nothing/simple-launch/internal/interfaces/catalog"
	"github.com/half-nothing/simple-launch/internal/interfaces/config"
	"github.com/half-nothing/simple-launch/internal/interfaces/log"
	"gopkg.in/gomail.v2"
	"html/template"
	"time"
)

var reportTemplate = template.Must(template.New("report").Parse(`<h3>Launch catalog import {{.Status}}</h3>
<p>Finished at {{.FinishedAt}}</p>
{{if .Error}}<p>Error: {{.Error}}</p>{{else}}<ul>
<li>Total: {{.Result.Total}}</li>
<li>Saved: {{.Result.Saved}}</li>
<li>Failed: {{len .Result.FailedFlightNumbers}}{{if .Result.FailedFlightNumbers}} ({{.Result.FailedFlightNumbers}}){{end}}</li>
{{if .Result.Snapshot}}<li>Snapshot: {{.Result.Snapshot.FileName}}</li>{{end}}
</ul>{{end}}`))

type reportData struct {
	Status     string
	FinishedAt string
	Error      string
	Result     *ImportResult
}

var _ ReporterInterface = (*EmailReporter)(nil)

// EmailReporter mails the outcome of every catalog import to the configured receivers
type EmailReporter struct {
	logger log.LoggerInterface
	config *config.EmailConfig
	send   func(message ...*gomail.Message) error
}

// NewEmailReporter returns nil when e-mail reports are disabled
func NewEmailReporter(logger log.LoggerInterface, config *config.EmailConfig) ReporterInterface {
	if config == nil || !config.Enabled || config.EmailServer == nil {
		return nil
	}
	return &EmailReporter{logger: logger, config: config, send: config.EmailServer.DialAndSend}
}

func importStatus(result *ImportResult, err error) string {
	switch {
	case err != nil:
		return "failed"
	case result.Failed() > 0:
		return "partially failed"
	default:
		return "succeeded"
	}
}

func (reporter *EmailReporter) buildMessage(result *ImportResult, err error) (*gomail.Message, error) {
	data := &reportData{
		Status:     importStatus(result, err),
		FinishedAt: time.Now().Format(time.RFC3339),
		Result:     result,
	}
	if err != nil {
		data.Error = err.Error()
	}
	var body bytes.Buffer
	if err := reportTemplate.Execute(&body, data); err != nil {
		return nil, err
	}
	message := gomail.NewMessage()
	message.SetHeader("From", reporter.config.Username)
	message.SetHeader("To", reporter.config.Receivers...)
	message.SetHeader("Subject", fmt.Sprintf("Launch catalog import %s", data.Status))
	message.SetBody("text/html", body.String())
	return message, nil
}

func (reporter *EmailReporter) Report(result *ImportResult, err error) error {
	message, buildErr := reporter.buildMessage(result, err)
	if buildErr != nil {
		return buildErr
	}
	if err := reporter.send(message); err != nil {
		return err
	}
	reporter.logger.DebugF("Catalog import report sent to %v", reporter.config.Receivers)
	return nil
}
