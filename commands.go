package lightpack

// ─── Sorgu Komutları ────────────────────────────────────────────────────────────

// Profiles, cihazda kayıtlı profillerin adlarını döner.
//
//	profiles, err := client.Profiles()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(profiles) // [Lightpack Film Oyun]
func (c *Client) Profiles() ([]string, error) {
	resp, err := c.sendAndReceive(buildCommand(cmdGetProfiles))
	if err != nil {
		return nil, err
	}
	return parseProfiles(resp)
}

// Profile, aktif profilin adını döner.
// Değer kırpılmaz; cihazın gönderdiği "\r\n" sonda kalabilir.
func (c *Client) Profile() (string, error) {
	resp, err := c.sendAndReceive(buildCommand(cmdGetProfile))
	if err != nil {
		return "", err
	}
	return parseValue(cmdGetProfile, resp)
}

// Status, cihazın ham durum yanıtını döner (ör: "status:on\r\n").
func (c *Client) Status() (string, error) {
	return c.sendAndReceive(buildCommand(cmdGetStatus))
}

// CountLEDs, cihazın bildirdiği LED sayısını döner.
// Değer sayı değilse *FormatError döner.
func (c *Client) CountLEDs() (int, error) {
	resp, err := c.sendAndReceive(buildCommand(cmdGetCountLEDs))
	if err != nil {
		return 0, err
	}
	return parseInt(cmdGetCountLEDs, resp)
}

// APIStatus, API durumunu döner (ör: "idle\r\n" veya "busy\r\n").
func (c *Client) APIStatus() (string, error) {
	resp, err := c.sendAndReceive(buildCommand(cmdGetStatusAPI))
	if err != nil {
		return "", err
	}
	return parseValue(cmdGetStatusAPI, resp)
}

// ─── Renk ve Ayar Komutları ─────────────────────────────────────────────────────
//
// Aşağıdaki komutlar değer aralıklarını kontrol etmez; değerler cihaza
// olduğu gibi gönderilir ve cihazın ham yanıtı döner. Başarıyı yanıt
// metninden kontrol etmek çağıranın işidir.

// SetColor, tek bir LED kanalının rengini ayarlar.
// r, g, b değerleri 0-255 aralığında olmalıdır.
//
//	resp, err := client.SetColor(5, 255, 128, 0)
func (c *Client) SetColor(led, r, g, b int) (string, error) {
	return c.sendAndReceive(buildSetColor(led, r, g, b))
}

// SetColorForAll, topolojideki tüm LED'leri tek komutla aynı renge ayarlar.
// r, g, b değerleri 0-255 aralığında olmalıdır.
func (c *Client) SetColorForAll(r, g, b int) (string, error) {
	return c.sendAndReceive(buildSetColorForAll(c.leds, r, g, b))
}

// SetGamma, gamma düzeltmesini ayarlar. Değer 0.01-10.0 aralığında olmalıdır
// ve tek ondalık basamakla gönderilir.
func (c *Client) SetGamma(gamma float64) (string, error) {
	return c.sendAndReceive(buildSetGamma(gamma))
}

// SetSmoothness, renk geçiş yumuşaklığını ayarlar (0-255).
func (c *Client) SetSmoothness(smoothness int) (string, error) {
	return c.sendAndReceive(buildSetInt(cmdSetSmooth, smoothness))
}

// SetBrightness, parlaklığı yüzde olarak ayarlar (0-100).
func (c *Client) SetBrightness(brightness int) (string, error) {
	return c.sendAndReceive(buildSetInt(cmdSetBrightness, brightness))
}

// SetProfile, aktif profili değiştirir.
func (c *Client) SetProfile(name string) (string, error) {
	return c.sendAndReceive(buildCommandWithValue(cmdSetProfile, name))
}

// ─── Güç Komutları ──────────────────────────────────────────────────────────────

// TurnOn, LED'leri açar.
func (c *Client) TurnOn() (string, error) {
	return c.sendAndReceive(buildCommandWithValue(cmdSetStatus, statusOn))
}

// TurnOff, LED'leri kapatır.
func (c *Client) TurnOff() (string, error) {
	return c.sendAndReceive(buildCommandWithValue(cmdSetStatus, statusOff))
}

// ─── Ham Komut ──────────────────────────────────────────────────────────────────

// SendRaw, verilen komut satırını gönderir ve ham yanıtı döner.
// Satır sonu yoksa eklenir.
//
//	resp, err := client.SendRaw("getstatus")
func (c *Client) SendRaw(line string) (string, error) {
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line += commandTerminator
	}
	return c.sendAndReceive(line)
}
