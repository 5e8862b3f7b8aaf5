package request

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

var Request = resty.New().SetTransport(&http.Transport{
	Proxy: http.ProxyFromEnvironment,
}).SetRetryCount(3)
