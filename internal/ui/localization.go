package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyEnterURL      = "enter_url"
	KeyTitle         = "title"
	KeyHighestMP4    = "highest_mp4"
	KeyHighestMP3    = "highest_mp3"
	KeyLegacyFormat  = "legacy_format"
	KeyAutoReveal    = "auto_reveal"
	KeyReuseMedia    = "reuse_media"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySettingsSaved = "settings_saved"
	KeyInterface     = "interface_settings"
	KeyDownloads     = "download_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "YouTube Downloader",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyEnterURL:      "Enter YouTube URL and press Enter",
		KeyTitle:         "Title",
		KeyHighestMP4:    "Highest MP4 Resolution",
		KeyHighestMP3:    "Highest MP3 Bitrate",
		KeyLegacyFormat:  "Legacy Format (Video & Audio)",
		KeyAutoReveal:    "Open folder when a download completes",
		KeyReuseMedia:    "Reuse fetched details when downloading",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySettingsSaved: "Settings saved successfully!",
		KeyInterface:     "Interface Settings",
		KeyDownloads:     "Download Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "YouTube Загрузчик",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyEnterURL:      "Введите URL YouTube и нажмите Enter",
		KeyTitle:         "Название",
		KeyHighestMP4:    "Макс. разрешение MP4",
		KeyHighestMP3:    "Макс. битрейт MP3",
		KeyLegacyFormat:  "Совмещённый формат (видео и звук)",
		KeyAutoReveal:    "Открывать папку после загрузки",
		KeyReuseMedia:    "Использовать полученные данные при загрузке",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyInterface:     "Настройки интерфейса",
		KeyDownloads:     "Настройки загрузки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "YouTube Downloader",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyEnterURL:      "Digite a URL do YouTube e pressione Enter",
		KeyTitle:         "Título",
		KeyHighestMP4:    "Maior Resolução MP4",
		KeyHighestMP3:    "Maior Taxa de Bits MP3",
		KeyLegacyFormat:  "Formato Legado (Vídeo e Áudio)",
		KeyAutoReveal:    "Abrir pasta ao concluir o download",
		KeyReuseMedia:    "Reutilizar detalhes obtidos ao baixar",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyInterface:     "Configurações de Interface",
		KeyDownloads:     "Configurações de Download",
	}
}
