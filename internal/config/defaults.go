package config

const (
	defaultConfigPath          = "~/.config/reelpub/config.toml"
	defaultVideosDir           = "public/videos"
	defaultCredentialsFile     = "client_secrets.json"
	defaultRegistryFile        = "youtube_video_ids.json"
	defaultInstructionsFile    = "youtube_upload_instructions.json"
	defaultTargetArtifact      = "src/presentations/DualPanelPresentation.tsx"
	defaultLogDir              = "~/.local/share/reelpub/logs"
	defaultUploaderBinary      = "youtube-upload"
	defaultUploadTimeout       = 900
	defaultOutputFormat        = OutputFormatAuto
	defaultFFprobeBinary       = "ffprobe"
	defaultProbeTimeoutSeconds = 30
	defaultEmbedHost           = "www.youtube.com"
	defaultMarker              = "YOUTUBE_VIDEOS"
	defaultAnchor              = "interface DualPanelPresentationProps"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// ProjectConfigFile is looked up in the working directory before the user-level
// config.
const ProjectConfigFile = "reelpub.toml"

// Output contracts understood by the upload client.
const (
	OutputFormatAuto   = "auto"
	OutputFormatTagged = "tagged"
	OutputFormatLegacy = "legacy"
)

// Environment variables that take precedence over the config file.
const (
	EnvCredentialsFile = "REELPUB_CLIENT_SECRETS"
	EnvUploaderBinary  = "REELPUB_UPLOADER"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			VideosDir:        defaultVideosDir,
			CredentialsFile:  defaultCredentialsFile,
			RegistryFile:     defaultRegistryFile,
			InstructionsFile: defaultInstructionsFile,
			TargetArtifact:   defaultTargetArtifact,
			LogDir:           defaultLogDir,
		},
		Uploader: Uploader{
			Binary:              defaultUploaderBinary,
			TimeoutSeconds:      defaultUploadTimeout,
			OutputFormat:        defaultOutputFormat,
			FFprobeBinary:       defaultFFprobeBinary,
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Linker: Linker{
			EmbedHost: defaultEmbedHost,
			Marker:    defaultMarker,
			Anchor:    defaultAnchor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
