package ui

import "github.com/ytget/video-merger/internal/form"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyVideoA              = "video_a"
	KeyVideoB              = "video_b"
	KeyResolution          = "resolution"
	KeyChooseFile          = "choose_file"
	KeyNoFileSelected      = "no_file_selected"
	KeyMergeVideos         = "merge_videos"
	KeyProcessing          = "processing"
	KeyPleaseWait          = "please_wait"
	KeySelectBothVideos    = "select_both_videos"
	KeySelectResolution    = "select_resolution"
	KeyMergeFailed         = "merge_failed"
	KeySavedTo             = "saved_to"
	KeyReveal              = "reveal"
	KeyOpen                = "open"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeyDownloadDirectory   = "download_directory"
	KeyEndpoint            = "endpoint"
	KeyDefaultResolution   = "default_resolution"
	KeyAutoReveal          = "auto_reveal"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyEndpointRestartNote = "endpoint_restart_note"
	KeyInvalidEndpoint     = "invalid_endpoint"
)

// messageKeys maps form messages to their localization keys
var messageKeys = map[string]string{
	form.MsgSelectBothVideos: KeySelectBothVideos,
	form.MsgSelectResolution: KeySelectResolution,
	form.MsgMergeFailed:      KeyMergeFailed,
}

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

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Message localizes a message produced by the form. Unknown messages are
// returned unchanged.
func (l *Localization) Message(msg string) string {
	if key, ok := messageKeys[msg]; ok {
		return l.GetText(key)
	}
	return msg
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Video Merge",
		KeyVideoA:              "Video A",
		KeyVideoB:              "Video B",
		KeyResolution:          "Resolution",
		KeyChooseFile:          "Choose file",
		KeyNoFileSelected:      "No file selected",
		KeyMergeVideos:         "Merge Videos",
		KeyProcessing:          "Processing...",
		KeyPleaseWait:          "Please wait while we process your video",
		KeySelectBothVideos:    form.MsgSelectBothVideos,
		KeySelectResolution:    form.MsgSelectResolution,
		KeyMergeFailed:         form.MsgMergeFailed,
		KeySavedTo:             "Saved to",
		KeyReveal:              "Show in folder",
		KeyOpen:                "Open",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeyDownloadDirectory:   "Download Directory",
		KeyEndpoint:            "Merge Endpoint",
		KeyDefaultResolution:   "Default Resolution",
		KeyAutoReveal:          "Show merged file when done",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyErrorOpeningFile:    "Error opening file",
		KeyEndpointRestartNote: "Endpoint changes apply after restart",
		KeyInvalidEndpoint:     "Endpoint must be an http or https URL",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Склейка видео",
		KeyVideoA:              "Видео A",
		KeyVideoB:              "Видео B",
		KeyResolution:          "Разрешение",
		KeyChooseFile:          "Выбрать файл",
		KeyNoFileSelected:      "Файл не выбран",
		KeyMergeVideos:         "Склеить видео",
		KeyProcessing:          "Обработка...",
		KeyPleaseWait:          "Пожалуйста, подождите, пока мы обрабатываем видео",
		KeySelectBothVideos:    "Пожалуйста, выберите оба видео",
		KeySelectResolution:    "Пожалуйста, выберите разрешение",
		KeyMergeFailed:         "Не удалось склеить видео",
		KeySavedTo:             "Сохранено в",
		KeyReveal:              "Показать в папке",
		KeyOpen:                "Открыть",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeyDownloadDirectory:   "Папка загрузки",
		KeyEndpoint:            "Адрес сервиса",
		KeyDefaultResolution:   "Разрешение по умолчанию",
		KeyAutoReveal:          "Показывать файл после склейки",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyBrowse:              "Обзор",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyEndpointRestartNote: "Новый адрес применится после перезапуска",
		KeyInvalidEndpoint:     "Адрес должен быть URL http или https",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Juntar Vídeos",
		KeyVideoA:              "Vídeo A",
		KeyVideoB:              "Vídeo B",
		KeyResolution:          "Resolução",
		KeyChooseFile:          "Escolher arquivo",
		KeyNoFileSelected:      "Nenhum arquivo selecionado",
		KeyMergeVideos:         "Juntar Vídeos",
		KeyProcessing:          "Processando...",
		KeyPleaseWait:          "Aguarde enquanto processamos seu vídeo",
		KeySelectBothVideos:    "Selecione os dois vídeos",
		KeySelectResolution:    "Selecione uma resolução",
		KeyMergeFailed:         "Falha ao juntar os vídeos",
		KeySavedTo:             "Salvo em",
		KeyReveal:              "Mostrar na pasta",
		KeyOpen:                "Abrir",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeyDownloadDirectory:   "Diretório de Download",
		KeyEndpoint:            "Endereço do Serviço",
		KeyDefaultResolution:   "Resolução Padrão",
		KeyAutoReveal:          "Mostrar arquivo ao concluir",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyBrowse:              "Navegar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyEndpointRestartNote: "O novo endereço vale após reiniciar",
		KeyInvalidEndpoint:     "O endereço deve ser uma URL http ou https",
	}
}
