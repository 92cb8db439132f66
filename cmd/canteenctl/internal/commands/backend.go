package commands

import (
	"net/http"
	"time"

	"github.com/appetiteclub/canteen/pkg/canteen"
	"github.com/aquamarinepk/aqm"
)

const (
	defaultBackendURL = "http://localhost:5000"
	requestTimeout    = 10 * time.Second
)

// NewBackend builds the canteen client from the services.canteen.* keys.
func NewBackend(config *aqm.Config) *canteen.Client {
	var url, cookie string
	if config != nil {
		url, _ = config.GetString("services.canteen.url")
		cookie, _ = config.GetString("services.canteen.cookie")
	}
	if url == "" {
		url = defaultBackendURL
	}

	return canteen.NewClient(url,
		canteen.WithCookie(cookie),
		canteen.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	)
}
