package lightpack

// ─── API Kilidi ─────────────────────────────────────────────────────────────────
//
// Renk ve ayar komutları için cihaz kilidi gerekir. Kilit cihaz tarafında
// tutulur; istemci yalnızca son lock/unlock yanıtına göre bir inanç saklar.
// Yenileme, süre aşımı veya heartbeat yoktur.
//
//	NotHeld --lock:success--> Held --unlock:success|not locked--> NotHeld
//
// Başarısız bir kilit denemesi hata değildir; false döner.

// Lock, API kilidini almaya çalışır. Yanıt "lock:success" içeriyorsa kilit
// alınmış sayılır ve true döner; aksi halde false döner.
// Taşıma hatası olursa yerel durum değişmez.
//
//	ok, err := client.Lock()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    log.Println("cihaz başka bir istemci tarafından kilitli")
//	}
func (c *Client) Lock() (bool, error) {
	resp, err := c.sendAndReceive(buildCommand(cmdLock))
	if err != nil {
		return false, err
	}

	if isLockAcquired(resp) {
		c.lock = LockHeld
		return true, nil
	}
	c.lock = LockNotHeld
	c.logf("Kilit alınamadı: %q", resp)
	return false, nil
}

// Unlock, API kilidini bırakır. Yanıt "unlock:success" veya
// "unlock:not locked" içeriyorsa true döner. Aksi halde istemci kilidin
// hâlâ kendisinde olduğunu varsayar ve false döner.
func (c *Client) Unlock() (bool, error) {
	resp, err := c.sendAndReceive(buildCommand(cmdUnlock))
	if err != nil {
		return false, err
	}

	if isLockReleased(resp) {
		c.lock = LockNotHeld
		return true, nil
	}
	c.lock = LockHeld
	c.logf("Kilit bırakılamadı: %q", resp)
	return false, nil
}
