package scatterapipb

type AccessLogDetails struct {
	Handler                     string            `json:"handler,omitempty"`
	ScatterapiUUID              string            `json:"scatterapi_uuid,omitempty"`
	Username                    string            `json:"username,omitempty"`
	URL                         string            `json:"url,omitempty"`
	PeerIP                      string            `json:"peer_ip,omitempty"`
	PeerPort                    string            `json:"peer_port,omitempty"`
	Host                        string            `json:"host,omitempty"`
	Referer                     string            `json:"referer,omitempty"`
	Format                      string            `json:"format,omitempty"`
	Template                    string            `json:"template,omitempty"`
	UseCache                    bool              `json:"use_cache,omitempty"`
	CacheTimeout                int32             `json:"cache_timeout,omitempty"`
	SeriesCount                 int               `json:"series_count,omitempty"`
	PointsCount                 int               `json:"points_count,omitempty"`
	Runtime                     float64           `json:"runtime,omitempty"`
	HTTPCode                    int32             `json:"http_code,omitempty"`
	ScatterapiResponseSizeBytes int64             `json:"scatterapi_response_size_bytes,omitempty"`
	Reason                      string            `json:"reason,omitempty"`
	URI                         string            `json:"uri,omitempty"`
	FromCache                   bool              `json:"from_cache"`
	RequestHeaders              map[string]string `json:"request_headers"`
}
