package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyOpenDownloads     = "open_downloads"
	KeyLocating          = "locating"
	KeyNotInstalled      = "not_installed"
	KeyDownloadInstall   = "download_install"
	KeyInstallPage       = "install_page"
	KeyRecheck           = "recheck"
	KeyInstallManually   = "install_manually"
	KeyDownloading       = "downloading"
	KeyFatal             = "fatal"
	KeyUsing             = "using"
	KeyHelpUnavailable   = "help_unavailable"
	KeyGettingHelp       = "getting_help"
	KeySearchHelp        = "search_help"
	KeyAdd               = "add"
	KeyAddArgument       = "add_argument"
	KeyArgument          = "argument"
	KeyExpandPlaylist    = "expand_playlist"
	KeyRun               = "run"
	KeyProcessFinished   = "process_finished"
	KeyProgram           = "program"
	KeyHelpFlag          = "help_flag"
	KeyDataDirectory     = "data_directory"
	KeyWorkingDirectory  = "working_directory"
	KeyHelpTimeout       = "help_timeout"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyErrorOpeningFiles = "error_opening_files"
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

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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
		KeyAppTitle:          "dlshell",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyOpenDownloads:     "Open downloads folder",
		KeyLocating:          "Please wait, locating your %s...",
		KeyNotInstalled:      "Whoops, it looks like you haven't installed %s",
		KeyDownloadInstall:   "Click here to let us download and install %s",
		KeyInstallPage:       "Click here to install %s",
		KeyRecheck:           "Recheck",
		KeyInstallManually:   "Please install %s manually.",
		KeyDownloading:       "Downloading %s...",
		KeyFatal:             "Ugh, something terrible happened. Check the details below.",
		KeyUsing:             "Using %s",
		KeyHelpUnavailable:   "Help is not available.",
		KeyGettingHelp:       "Getting help...",
		KeySearchHelp:        "Search help",
		KeyAdd:               "+ Add",
		KeyAddArgument:       "Add new argument",
		KeyArgument:          "Argument",
		KeyExpandPlaylist:    "Expand playlist into videos",
		KeyRun:               "Run",
		KeyProcessFinished:   "Process finished",
		KeyProgram:           "Program",
		KeyHelpFlag:          "Help flag",
		KeyDataDirectory:     "Data directory",
		KeyWorkingDirectory:  "Working directory",
		KeyHelpTimeout:       "Help timeout (seconds)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Restart the application to use the new program settings.",
		KeyErrorOpeningFiles: "Error opening folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "dlshell",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyOpenDownloads:     "Открыть папку загрузок",
		KeyLocating:          "Подождите, ищем %s...",
		KeyNotInstalled:      "Похоже, %s не установлен",
		KeyDownloadInstall:   "Нажмите здесь, чтобы скачать и установить %s",
		KeyInstallPage:       "Нажмите здесь, чтобы установить %s",
		KeyRecheck:           "Проверить снова",
		KeyInstallManually:   "Пожалуйста, установите %s вручную.",
		KeyDownloading:       "Загрузка %s...",
		KeyFatal:             "Что-то пошло не так. Подробности ниже.",
		KeyUsing:             "Используется %s",
		KeyHelpUnavailable:   "Справка недоступна.",
		KeyGettingHelp:       "Получение справки...",
		KeySearchHelp:        "Поиск по справке",
		KeyAdd:               "+ Добавить",
		KeyAddArgument:       "Новый аргумент",
		KeyArgument:          "Аргумент",
		KeyExpandPlaylist:    "Развернуть плейлист в видео",
		KeyRun:               "Запустить",
		KeyProcessFinished:   "Процесс завершён",
		KeyProgram:           "Программа",
		KeyHelpFlag:          "Флаг справки",
		KeyDataDirectory:     "Папка данных",
		KeyWorkingDirectory:  "Рабочая папка",
		KeyHelpTimeout:       "Тайм-аут справки (секунды)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Перезапустите приложение, чтобы применить настройки программы.",
		KeyErrorOpeningFiles: "Ошибка открытия папки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "dlshell",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyOpenDownloads:     "Abrir pasta de downloads",
		KeyLocating:          "Aguarde, localizando %s...",
		KeyNotInstalled:      "Parece que %s não está instalado",
		KeyDownloadInstall:   "Clique aqui para baixar e instalar %s",
		KeyInstallPage:       "Clique aqui para instalar %s",
		KeyRecheck:           "Verificar novamente",
		KeyInstallManually:   "Instale %s manualmente.",
		KeyDownloading:       "Baixando %s...",
		KeyFatal:             "Algo deu muito errado. Veja os detalhes abaixo.",
		KeyUsing:             "Usando %s",
		KeyHelpUnavailable:   "Ajuda indisponível.",
		KeyGettingHelp:       "Obtendo ajuda...",
		KeySearchHelp:        "Pesquisar ajuda",
		KeyAdd:               "+ Adicionar",
		KeyAddArgument:       "Novo argumento",
		KeyArgument:          "Argumento",
		KeyExpandPlaylist:    "Expandir playlist em vídeos",
		KeyRun:               "Executar",
		KeyProcessFinished:   "Processo concluído",
		KeyProgram:           "Programa",
		KeyHelpFlag:          "Opção de ajuda",
		KeyDataDirectory:     "Diretório de dados",
		KeyWorkingDirectory:  "Diretório de trabalho",
		KeyHelpTimeout:       "Tempo limite da ajuda (segundos)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "Reinicie o aplicativo para usar as novas configurações do programa.",
		KeyErrorOpeningFiles: "Erro ao abrir pasta",
	}
}
