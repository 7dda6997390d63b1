package cmd

import (
	"fmt"

	"github.com/cryptexhq/cryptex/internal/vault"
)

// Status prints the store file's unencrypted parameters. No password is
// required.
func Status(storeFile string) {
	info, err := vault.ReadInfo(storeFile)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Store:      %s (%s)\n", storeFile, formatSize(info.Size))
	fmt.Printf("Vault ID:   %s\n", info.VaultID)
	fmt.Printf("Cipher:     AES-256-GCM\n")
	fmt.Printf("KDF:        PBKDF2-SHA256, %d iterations\n", info.Iterations)
	if !info.Created.IsZero() {
		fmt.Printf("Created:    %s\n", info.Created.Format("2006-01-02 15:04:05"))
	}
	if !info.Modified.IsZero() {
		fmt.Printf("Modified:   %s\n", info.Modified.Format("2006-01-02 15:04:05"))
	}
}

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
