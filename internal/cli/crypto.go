package cli

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/crypto"
	"github.com/kbukum/reddish/errors"
	"github.com/kbukum/reddish/logger"
	"github.com/kbukum/reddish/str"
	"github.com/kbukum/reddish/validation"
)

var algorithms = []string{string(crypto.AlgorithmAESGCM), string(crypto.AlgorithmChaCha20)}

func cryptoCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "crypto",
		Short: "Hash, encode and encrypt text",
	}

	for _, h := range []struct {
		use string
		fn  func(string) string
	}{
		{"md5", crypto.MD5Hash},
		{"sha256", crypto.SHA256Hash},
		{"sha3", crypto.SHA3Hash},
		{"blake2b", crypto.BLAKE2bHash},
	} {
		c.AddCommand(&cobra.Command{
			Use:   h.use + " <text>",
			Short: "Print the " + h.use + " digest of text as hex",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.print(h.fn(args[0]))
			},
		})
	}

	c.AddCommand(
		codecCmd(a, "base64", "standard base64", crypto.Base64Encode, crypto.Base64Decode),
		codecCmd(a, "hex", "lowercase hex", crypto.HexEncode, crypto.HexDecode),
		codecCmd(a, "url", "percent-encoding", crypto.URLEncode, crypto.URLDecode),
		cipherCmd(a, "encrypt", "Encrypt text to base64 ciphertext", crypto.Cipher.Encrypt),
		cipherCmd(a, "decrypt", "Decrypt base64 ciphertext", crypto.Cipher.Decrypt),
	)
	return c
}

func codecCmd(a *app, name, desc string, encode func(string) string, decode func(string) (string, bool)) *cobra.Command {
	var dec bool

	cmd := &cobra.Command{
		Use:   name + " <text>",
		Short: "Encode text as " + desc + ", or decode with --decode",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !dec {
				return a.print(encode(args[0]))
			}
			s, ok := decode(args[0])
			if !ok {
				logger.Get("crypto").Debug("decode rejected input", logger.Fields(logger.FieldOperation, name, "bytes", len(args[0])))
				return errors.InvalidFormat("input", desc+" encoding valid UTF-8 text")
			}
			return a.print(s)
		},
	}
	cmd.Flags().BoolVarP(&dec, "decode", "d", false, "decode instead of encode")
	return cmd
}

func cipherCmd(a *app, use, short string, op func(crypto.Cipher, string) (string, error)) *cobra.Command {
	var key, algorithm string

	cmd := &cobra.Command{
		Use:   use + " <text>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v := validation.New().
				Required("key", key).
				OneOf("algorithm", algorithm, algorithms)
			if err := v.Error(); err != nil {
				return err
			}

			c, err := crypto.NewCipher(key, crypto.WithAlgorithm(crypto.Algorithm(algorithm)))
			if err != nil {
				return err
			}
			out, err := op(c, args[0])
			if err != nil {
				logger.Get("crypto").WithError(err).Debug(use+" failed", logger.Fields(
					"algorithm", algorithm,
					"key", str.Mask(key, 2),
				))
				return err
			}
			return a.print(out)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "secret key; stretched with SHA-256")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(crypto.AlgorithmAESGCM), "aes-256-gcm or chacha20-poly1305")
	return cmd
}
