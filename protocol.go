package lightpack

import (
	"math"
	"strconv"
	"strings"
)

// ─── Komut Oluşturma ────────────────────────────────────────────────────────────
//
// Bu dosya, Lightpack metin protokolü için komut satırlarını oluşturan ve
// yanıtları ayrıştıran düşük seviyeli fonksiyonları içerir.
//
// Komut Formatı:
//   komut[:parametreler]\n
//
// Yanıt Formatı:
//   anahtar:değer\r\n
//   anahtar:değer;değer;...;\r\n
//
// Sayılar her zaman strconv ile yazılır; sistem yereli (locale) ondalık
// ayırıcıyı etkilemez.

// buildCommand, parametresiz bir komut satırı oluşturur.
//
//	buildCommand("getstatus") // "getstatus\n"
func buildCommand(name string) string {
	return name + commandTerminator
}

// buildCommandWithValue, tek parametreli bir komut satırı oluşturur.
//
//	buildCommandWithValue("setprofile", "Film") // "setprofile:Film\n"
func buildCommandWithValue(name, value string) string {
	return name + fieldSeparator + value + commandTerminator
}

// appendColorSegment, "<led>-<r>,<g>,<b>;" parçasını sb'ye ekler.
func appendColorSegment(sb *strings.Builder, led, r, g, b int) {
	sb.WriteString(strconv.Itoa(led))
	sb.WriteByte('-')
	sb.WriteString(strconv.Itoa(r))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(g))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(b))
	sb.WriteString(listSeparator)
}

// buildSetColor, tek bir LED için renk komutu oluşturur.
//
//	buildSetColor(5, 10, 20, 30) // "setcolor:5-10,20,30;\n"
func buildSetColor(led, r, g, b int) string {
	return buildSetColorForAll([]int{led}, r, g, b)
}

// buildSetColorForAll, topolojideki her LED için bir parça içeren tek bir
// renk komutu oluşturur. Boş topoloji "setcolor:\n" üretir.
//
//	buildSetColorForAll([]int{0, 1}, 255, 0, 10) // "setcolor:0-255,0,10;1-255,0,10;\n"
func buildSetColorForAll(leds []int, r, g, b int) string {
	var sb strings.Builder
	sb.WriteString(cmdSetColor)
	sb.WriteString(fieldSeparator)
	for _, led := range leds {
		appendColorSegment(&sb, led, r, g, b)
	}
	sb.WriteString(commandTerminator)
	return sb.String()
}

// buildSetGamma, gamma komutunu tek ondalık basamakla oluşturur.
//
//	buildSetGamma(2.0) // "setgamma:2.0\n"
func buildSetGamma(gamma float64) string {
	return buildCommandWithValue(cmdSetGamma, formatGamma(gamma))
}

// formatGamma, değeri "." ayırıcılı ve tek ondalık basamaklı yazar.
// Tam ortadaki değerler sıfırdan uzağa yuvarlanır (2.25 -> "2.3").
func formatGamma(gamma float64) string {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return strconv.FormatFloat(gamma, 'f', 1, 64)
	}
	return strconv.FormatFloat(math.Round(gamma*10)/10, 'f', 1, 64)
}

// buildSetInt, tek tamsayı parametreli bir komut oluşturur.
//
//	buildSetInt("setsmooth", 100) // "setsmooth:100\n"
func buildSetInt(name string, value int) string {
	return buildCommandWithValue(name, strconv.Itoa(value))
}

// ─── Yanıt Ayrıştırma ───────────────────────────────────────────────────────────

// splitFields, s'yi sep ile böler ve sondaki boş alanları atar.
// s içinde sep yoksa tek eleman olarak s'nin kendisi döner.
//
//	splitFields("a;b;;", ";") // ["a", "b"]
//	splitFields(":", ":")     // []
func splitFields(s, sep string) []string {
	if !strings.Contains(s, sep) {
		return []string{s}
	}
	parts := strings.Split(s, sep)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}

// responseField, yanıtı ":" ile bölüp index'teki alanı döner.
// Alan yoksa MalformedResponseError döner.
func responseField(command, response string, index int) (string, error) {
	fields := splitFields(response, fieldSeparator)
	if index >= len(fields) {
		return "", &MalformedResponseError{Command: command, Response: response, Field: index}
	}
	return fields[index], nil
}

// parseProfiles, getprofiles yanıtından profil adlarını çıkarır.
//
//	parseProfiles("getprofiles:A;B;C;;\r\n") // ["A", "B", "C"]
func parseProfiles(response string) ([]string, error) {
	cleaned := strings.ReplaceAll(response, listTerminator, "")
	list, err := responseField(cmdGetProfiles, cleaned, 1)
	if err != nil {
		return nil, err
	}
	return splitFields(list, listSeparator), nil
}

// parseValue, "anahtar:değer" yanıtından değeri olduğu gibi döner.
// Sondaki "\r\n" silinmez.
func parseValue(command, response string) (string, error) {
	return responseField(command, response, 1)
}

// parseInt, "anahtar:sayı" yanıtındaki sayıyı boşlukları kırparak çevirir.
func parseInt(command, response string) (int, error) {
	field, err := responseField(command, response, 1)
	if err != nil {
		return 0, err
	}
	value := strings.TrimSpace(field)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FormatError{Command: command, Value: value, Err: err}
	}
	return n, nil
}

// isLockAcquired, lock yanıtının başarı işareti içerip içermediğini döner.
func isLockAcquired(response string) bool {
	return strings.Contains(response, lockSuccessMarker)
}

// isLockReleased, unlock yanıtının başarı veya "kilitli değil" işareti
// içerip içermediğini döner.
func isLockReleased(response string) bool {
	return strings.Contains(response, unlockSuccess) || strings.Contains(response, unlockNotLocked)
}
