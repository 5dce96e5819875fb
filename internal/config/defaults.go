package config

const (
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultCodec         = "libx265"
	defaultFPS           = 25
	defaultResolution    = "low"
	defaultOverwrite     = true
	defaultLogDir        = "~/.local/share/vidsqueeze/logs"
	defaultHistoryDB     = "~/.local/share/vidsqueeze/history.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Defaults: Defaults{
			Codec:      defaultCodec,
			FPS:        defaultFPS,
			Resolution: defaultResolution,
			Overwrite:  defaultOverwrite,
		},
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
