//go:build !windows

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

const serviceName = "dsuwire.service"

const serviceUnit = `[Unit]
Description=dsuwire DSU telemetry server
After=network.target

[Service]
ExecStart=%s serve
Restart=on-failure

[Install]
WantedBy=default.target
`

func install(logger *slog.Logger) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}

	unitDir, err := userUnitDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(unitDir, 0o755); err != nil {
		return err
	}

	unitPath := filepath.Join(unitDir, serviceName)
	unit := fmt.Sprintf(serviceUnit, exePath)
	if err := os.WriteFile(unitPath, []byte(unit), 0o644); err != nil {
		return err
	}

	for _, args := range [][]string{
		{"--user", "daemon-reload"},
		{"--user", "enable", "--now", serviceName},
	} {
		if out, err := exec.Command("systemctl", args...).CombinedOutput(); err != nil {
			return fmt.Errorf("systemctl %v failed: %w: %s", args, err, out)
		}
	}

	logger.Info("dsuwire install completed as systemd user service", "unit", unitPath)
	return nil
}

func uninstall(logger *slog.Logger) error {
	if out, err := exec.Command("systemctl", "--user", "disable", "--now", serviceName).CombinedOutput(); err != nil {
		logger.Warn("failed to disable service", "error", err, "output", string(out))
	}

	unitDir, err := userUnitDir()
	if err != nil {
		return err
	}
	unitPath := filepath.Join(unitDir, serviceName)
	if err := os.Remove(unitPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	if out, err := exec.Command("systemctl", "--user", "daemon-reload").CombinedOutput(); err != nil {
		logger.Warn("failed to reload systemd", "error", err, "output", string(out))
	}

	logger.Info("dsuwire autostart entry removed")
	return nil
}

func userUnitDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "systemd", "user"), nil
}
